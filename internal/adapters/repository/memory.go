package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// MemoryStore is a mutex-guarded, in-process Store. IDs start at 1 and grow
// monotonically per table.
type MemoryStore struct {
	mu sync.RWMutex

	offers  []model.Offer
	leads   []model.Lead
	results map[int64]model.Result

	nextOfferID int64
	nextLeadID  int64

	now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		results: make(map[int64]model.Result),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) SaveOffer(_ context.Context, offer model.Offer) (model.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOfferID++
	offer.ID = s.nextOfferID
	offer.CreatedAt = s.now()
	s.offers = append(s.offers, offer)
	return offer, nil
}

func (s *MemoryStore) LatestOffer(_ context.Context) (model.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.offers) == 0 {
		return model.Offer{}, ErrNotFound
	}
	return s.offers[len(s.offers)-1], nil
}

func (s *MemoryStore) InsertLeads(_ context.Context, leads []model.Lead) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, l := range leads {
		s.nextLeadID++
		l.ID = s.nextLeadID
		l.CreatedAt = now
		s.leads = append(s.leads, l)
	}
	return len(leads), nil
}

func (s *MemoryStore) ListLeads(_ context.Context) ([]model.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.leads), nil
}

func (s *MemoryStore) UpsertResult(_ context.Context, leadID int64, score int, label model.Intent, reasoning string) (model.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findLead(leadID); !ok {
		return model.Result{}, fmt.Errorf("%w: %d", ErrUnknownLead, leadID)
	}
	r := model.Result{
		LeadID:    leadID,
		Score:     score,
		Intent:    label,
		Reasoning: reasoning,
		CreatedAt: s.now(),
	}
	s.results[leadID] = r
	return r, nil
}

func (s *MemoryStore) ListResults(_ context.Context) ([]model.ResultView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ResultView, 0, len(s.results))
	for _, r := range s.results {
		l, _ := s.findLead(r.LeadID)
		out = append(out, model.ResultView{
			Result:   r,
			Name:     l.Name,
			Company:  l.Company,
			Role:     l.Role,
			Industry: l.Industry,
		})
	}
	slices.SortFunc(out, func(a, b model.ResultView) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.LeadID, b.LeadID)
	})
	return out, nil
}

func (s *MemoryStore) CountResults(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.results), nil
}

// findLead relies on leads being stored in ascending ID order.
func (s *MemoryStore) findLead(id int64) (model.Lead, bool) {
	i, ok := slices.BinarySearchFunc(s.leads, id, func(l model.Lead, id int64) int {
		return cmp.Compare(l.ID, id)
	})
	if !ok {
		return model.Lead{}, false
	}
	return s.leads[i], true
}
