package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// foreignKeyViolation is the SQLSTATE for a missing referenced row.
const foreignKeyViolation = "23503"

// Store is a repository.Store backed by a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// New creates a Store over pool. The caller owns the pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) SaveOffer(ctx context.Context, offer model.Offer) (model.Offer, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO offers (name, value_props, ideal_use_cases)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, offer.Name, offer.ValueProps, offer.IdealUseCases).Scan(&offer.ID, &offer.CreatedAt)
	if err != nil {
		return model.Offer{}, fmt.Errorf("insert offer: %w", err)
	}
	return offer, nil
}

func (s *Store) LatestOffer(ctx context.Context) (model.Offer, error) {
	var o model.Offer
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, value_props, ideal_use_cases, created_at
		FROM offers
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&o.ID, &o.Name, &o.ValueProps, &o.IdealUseCases, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Offer{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("select latest offer: %w", err)
	}
	return o, nil
}

func (s *Store) InsertLeads(ctx context.Context, leads []model.Lead) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []any{l.Name, l.Role, l.Company, l.Industry, l.Location, l.LinkedInBio})
	}
	n, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"leads"},
		[]string{"name", "role", "company", "industry", "location", "linkedin_bio"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy leads: %w", err)
	}
	return int(n), nil
}

func (s *Store) ListLeads(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, role, company, industry, location, linkedin_bio, created_at
		FROM leads
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}
	leads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Lead, error) {
		var l model.Lead
		err := row.Scan(&l.ID, &l.Name, &l.Role, &l.Company, &l.Industry, &l.Location, &l.LinkedInBio, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan leads: %w", err)
	}
	return leads, nil
}

func (s *Store) UpsertResult(ctx context.Context, leadID int64, score int, label model.Intent, reasoning string) (model.Result, error) {
	r := model.Result{LeadID: leadID, Score: score, Intent: label, Reasoning: reasoning}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO results (lead_id, score, intent, reasoning)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lead_id) DO UPDATE
		SET score = EXCLUDED.score,
		    intent = EXCLUDED.intent,
		    reasoning = EXCLUDED.reasoning,
		    created_at = now()
		RETURNING created_at
	`, leadID, score, string(label), reasoning).Scan(&r.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return model.Result{}, fmt.Errorf("%w: %d", repository.ErrUnknownLead, leadID)
		}
		return model.Result{}, fmt.Errorf("upsert result: %w", err)
	}
	return r, nil
}

func (s *Store) ListResults(ctx context.Context) ([]model.ResultView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT r.lead_id, r.score, r.intent, r.reasoning, r.created_at,
		       l.name, l.company, l.role, l.industry
		FROM results r
		JOIN leads l ON l.id = r.lead_id
		ORDER BY r.score DESC, r.lead_id
	`)
	if err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ResultView, error) {
		var (
			v     model.ResultView
			label string
		)
		err := row.Scan(&v.LeadID, &v.Score, &label, &v.Reasoning, &v.CreatedAt,
			&v.Name, &v.Company, &v.Role, &v.Industry)
		v.Intent = model.Intent(label)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan results: %w", err)
	}
	return views, nil
}

func (s *Store) CountResults(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}
