package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository/postgres"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Integration tests run against a disposable database named by
// LEADSCORE_TEST_DATABASE_URL. Tables are truncated first.
func TestStore(t *testing.T) {
	url := os.Getenv("LEADSCORE_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("LEADSCORE_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := postgres.Connect(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	Convey("Given an empty database", t, func() {
		_, err := pool.Exec(ctx, `TRUNCATE results, leads, offers RESTART IDENTITY CASCADE`)
		So(err, ShouldBeNil)
		store := postgres.New(pool)

		Convey("When no offer exists", func() {
			_, err := store.LatestOffer(ctx)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When offers are saved", func() {
			_, err := store.SaveOffer(ctx, model.Offer{Name: "A", ValueProps: "v", IdealUseCases: "u"})
			So(err, ShouldBeNil)
			second, err := store.SaveOffer(ctx, model.Offer{Name: "B", ValueProps: "v", IdealUseCases: "u"})
			So(err, ShouldBeNil)

			Convey("Then the latest is the highest id", func() {
				latest, err := store.LatestOffer(ctx)
				So(err, ShouldBeNil)
				So(latest.ID, ShouldEqual, second.ID)
				So(latest.Name, ShouldEqual, "B")
			})
		})

		Convey("When leads are scored twice", func() {
			n, err := store.InsertLeads(ctx, []model.Lead{
				{Name: "a", Role: "CEO", Company: "A", Industry: "SaaS"},
				{Name: "b", Role: "Analyst", Company: "B", Industry: "Retail"},
			})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)

			leads, err := store.ListLeads(ctx)
			So(err, ShouldBeNil)
			So(leads, ShouldHaveLength, 2)

			for _, l := range leads {
				_, err := store.UpsertResult(ctx, l.ID, 10, model.IntentLow, "first")
				So(err, ShouldBeNil)
			}
			_, err = store.UpsertResult(ctx, leads[1].ID, 90, model.IntentHigh, "second")
			So(err, ShouldBeNil)

			Convey("Then there is one ranked row per lead", func() {
				count, err := store.CountResults(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 2)

				views, err := store.ListResults(ctx)
				So(err, ShouldBeNil)
				So(views[0].LeadID, ShouldEqual, leads[1].ID)
				So(views[0].Intent, ShouldEqual, model.IntentHigh)
				So(views[0].Reasoning, ShouldEqual, "second")
				So(views[0].Company, ShouldEqual, "B")
			})
		})

		Convey("When the lead does not exist", func() {
			_, err := store.UpsertResult(ctx, 12345, 1, model.IntentLow, "")
			So(errors.Is(err, repository.ErrUnknownLead), ShouldBeTrue)
		})
	})
}
