package config

import "errors"

var (
	// ErrLoadConfig wraps failures reading a config file or the environment.
	ErrLoadConfig = errors.New("load config failed")
	// ErrInvalidConfig marks a loaded config that breaks a field constraint.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidDatabaseURL marks a database_url that is not a postgres URL.
	ErrInvalidDatabaseURL = errors.New("database_url must use the postgres:// or postgresql:// scheme")
)
