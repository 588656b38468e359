// Package repository defines the lead scoring store and its in-memory implementation.
package repository

import (
	"context"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// Store provides read/write access to offers, leads and scoring results.
type Store interface {
	// SaveOffer stores a new offer and returns it with ID and CreatedAt set.
	SaveOffer(ctx context.Context, offer model.Offer) (model.Offer, error)
	// LatestOffer returns the offer with the highest ID.
	// Returns ErrNotFound if no offer exists.
	LatestOffer(ctx context.Context) (model.Offer, error)

	// InsertLeads stores leads in order and returns how many were inserted.
	InsertLeads(ctx context.Context, leads []model.Lead) (int, error)
	// ListLeads returns every lead ordered by ID.
	ListLeads(ctx context.Context) ([]model.Lead, error)

	// UpsertResult stores the result for a lead, replacing any earlier one.
	UpsertResult(ctx context.Context, leadID int64, score int, label model.Intent, reasoning string) (model.Result, error)
	// ListResults returns results joined with their leads, highest score first
	// and then by lead ID.
	ListResults(ctx context.Context) ([]model.ResultView, error)
	// CountResults returns how many results are stored.
	CountResults(ctx context.Context) (int, error)
}
