package scoring_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/intent"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeStore struct {
	mu      sync.Mutex
	leads   []model.Lead
	listErr error
	failOn  int64
	results map[int64]model.Result
	upserts int
}

func newFakeStore(leads ...model.Lead) *fakeStore {
	return &fakeStore{leads: leads, results: map[int64]model.Result{}}
}

func (f *fakeStore) ListLeads(context.Context) ([]model.Lead, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.leads, nil
}

func (f *fakeStore) UpsertResult(_ context.Context, leadID int64, score int, label model.Intent, reasoning string) (model.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != 0 && leadID == f.failOn {
		return model.Result{}, errors.New("disk full")
	}
	f.upserts++
	r := model.Result{LeadID: leadID, Score: score, Intent: label, Reasoning: reasoning}
	f.results[leadID] = r
	return r, nil
}

type fixedClassifier struct {
	points int
	label  model.Intent
}

func (c fixedClassifier) Classify(context.Context, model.Offer, model.Lead, string) intent.Classification {
	return intent.Classification{Points: c.points, Intent: c.label, Reasoning: "fixed", Source: intent.SourceRemote}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("quota exceeded")
}

var offer = model.Offer{ID: 1, Name: "Outreach", ValueProps: "speed", IdealUseCases: "SaaS"}

func fullLead(id int64, role, industry string) model.Lead {
	return model.Lead{ID: id, Name: "N", Role: role, Company: "C", Industry: industry, Location: "L", LinkedInBio: "B"}
}

func TestBlend(t *testing.T) {
	Convey("Given layer scores", t, func() {
		So(scoring.Blend(0, 5), ShouldEqual, 5)
		So(scoring.Blend(50, 45), ShouldEqual, 95)
		So(scoring.Blend(50, 50), ShouldEqual, 100)
		So(scoring.Blend(60, 70), ShouldEqual, scoring.MaxScore)
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given leads and a classifier without credentials", t, func() {
		store := newFakeStore(
			fullLead(1, "CEO", "SaaS"),
			model.Lead{ID: 2, Name: "Bo", Role: "Analyst", Company: "Shop", Industry: "Retail", Location: "Oslo"},
		)
		o := scoring.New(store, store, intent.New(), scoring.WithWorkers(2))

		Convey("When the run completes", func() {
			summary, err := o.Run(ctx, offer, "")

			Convey("Then both leads are scored as expected", func() {
				So(err, ShouldBeNil)
				So(summary.Processed, ShouldEqual, 2)
				So(summary.RunID, ShouldNotBeBlank)
				So(summary.ByIntent[model.IntentHigh], ShouldEqual, 1)
				So(summary.ByIntent[model.IntentLow], ShouldEqual, 1)

				So(store.results[1].Score, ShouldEqual, 95)
				So(store.results[1].Intent, ShouldEqual, model.IntentHigh)
				So(store.results[2].Score, ShouldEqual, 5)
				So(store.results[2].Intent, ShouldEqual, model.IntentLow)
			})
		})

		Convey("When the run is repeated", func() {
			_, err := o.Run(ctx, offer, "")
			So(err, ShouldBeNil)
			_, err = o.Run(ctx, offer, "")
			So(err, ShouldBeNil)

			Convey("Then each lead still has exactly one result", func() {
				So(store.results, ShouldHaveLength, 2)
				So(store.upserts, ShouldEqual, 4)
				So(store.results[1].Score, ShouldEqual, 95)
			})
		})
	})

	Convey("Given a classifier that always awards 50", t, func() {
		store := newFakeStore(fullLead(1, "Founder", "Software"))
		o := scoring.New(store, store, fixedClassifier{points: 50, label: model.IntentHigh})

		Convey("Then the blend saturates at 100", func() {
			_, err := o.Run(ctx, offer, "")
			So(err, ShouldBeNil)
			So(store.results[1].Score, ShouldEqual, 100)
		})
	})

	Convey("Given every AI call fails", t, func() {
		leads := make([]model.Lead, 0, 10)
		for i := int64(1); i <= 10; i++ {
			leads = append(leads, fullLead(i, "VP Sales", "Consulting"))
		}
		store := newFakeStore(leads...)
		o := scoring.New(store, store, intent.New(intent.WithGenerator(failingGenerator{})), scoring.WithWorkers(3))

		Convey("Then no lead is skipped", func() {
			summary, err := o.Run(ctx, offer, "")
			So(err, ShouldBeNil)
			So(summary.Processed, ShouldEqual, len(leads))
			So(store.results, ShouldHaveLength, len(leads))
			So(store.results[4].Reasoning, ShouldStartWith, "Heuristic fallback:")
		})
	})

	Convey("Given leads cannot be listed", t, func() {
		store := newFakeStore()
		store.listErr = errors.New("connection refused")
		o := scoring.New(store, store, intent.New())

		Convey("Then the listing error is returned", func() {
			summary, err := o.Run(ctx, offer, "")
			So(errors.Is(err, scoring.ErrListLeads), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "connection refused")
			So(summary.Processed, ShouldEqual, 0)
			So(store.upserts, ShouldEqual, 0)
		})
	})

	Convey("Given a result cannot be stored", t, func() {
		store := newFakeStore(fullLead(1, "CEO", "SaaS"), fullLead(2, "CTO", "Tech"))
		store.failOn = 2
		o := scoring.New(store, store, intent.New(), scoring.WithWorkers(1))

		Convey("Then the run fails with a persistence error", func() {
			summary, err := o.Run(ctx, offer, "")
			So(errors.Is(err, scoring.ErrPersist), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "disk full")

			Convey("And earlier results are kept", func() {
				So(summary.Processed, ShouldEqual, 1)
				So(store.results, ShouldContainKey, int64(1))
			})
		})
	})

	Convey("Given no leads", t, func() {
		store := newFakeStore()
		o := scoring.New(store, store, intent.New())

		summary, err := o.Run(ctx, offer, "")
		So(err, ShouldBeNil)
		So(summary.Processed, ShouldEqual, 0)
	})
}
