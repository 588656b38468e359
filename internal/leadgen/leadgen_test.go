package leadgen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/http/api"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/leadcsv"
	service "github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/app"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		panic(err)
	}
}

func TestGenerateLeads(t *testing.T) {
	Convey("Given a request for synthetic leads", t, func() {
		leads := GenerateLeads(context.Background(), 25)

		Convey("Then every lead is named and traceable", func() {
			So(leads, ShouldHaveLength, 25)
			companies := map[string]bool{}
			for _, l := range leads {
				So(l.Name, ShouldNotBeBlank)
				companies[l.Company] = true
			}
			So(companies, ShouldHaveLength, 25)
		})

		Convey("Then the CSV round-trips through the upload parser", func() {
			var buf bytes.Buffer
			So(WriteCSV(&buf, leads), ShouldBeNil)

			parsed, err := leadcsv.Parse(&buf)
			So(err, ShouldBeNil)
			So(parsed, ShouldHaveLength, len(leads))
			for i := range leads {
				So(parsed[i].Name, ShouldEqual, leads[i].Name)
				So(parsed[i].Company, ShouldEqual, leads[i].Company)
				So(parsed[i].Role, ShouldEqual, leads[i].Role)
				So(parsed[i].LinkedInBio, ShouldEqual, leads[i].LinkedInBio)
			}
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a scoring service running in process", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithWorkerCount(3))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := http.NewServeMux()
		api.NewServer(svc).Register(ctx, mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		dir := t.TempDir()
		config := &Config{
			BaseURL:    srv.URL,
			NumLeads:   12,
			Timeout:    DefaultTimeout,
			OutputFile: filepath.Join(dir, "leads.csv"),
			ExportFile: filepath.Join(dir, "export.csv"),
			Verbose:    true,
		}

		Convey("When the smoke run executes", func() {
			stats, err := Run(ctx, config)

			Convey("Then every step agrees on the counts", func() {
				So(err, ShouldBeNil)
				So(stats.LeadsGenerated, ShouldEqual, 12)
				So(stats.LeadsInserted, ShouldEqual, 12)
				So(stats.LeadsProcessed, ShouldEqual, 12)
				So(stats.ResultsReturned, ShouldEqual, 12)
				So(stats.ExportRows, ShouldEqual, 12)
				So(stats.ByIntent["High"]+stats.ByIntent["Medium"]+stats.ByIntent["Low"], ShouldEqual, 12)
			})

			Convey("Then both files are written", func() {
				So(err, ShouldBeNil)
				_, statErr := os.Stat(config.OutputFile)
				So(statErr, ShouldBeNil)
				export, readErr := os.ReadFile(config.ExportFile)
				So(readErr, ShouldBeNil)
				So(string(export), ShouldStartWith, "lead_id,name,company,role,industry,score,intent,reasoning\r\n")
			})

			Convey("And a second run rescores the earlier leads too", func() {
				So(err, ShouldBeNil)
				stats, err := Run(ctx, config)
				So(err, ShouldBeNil)
				So(stats.LeadsInserted, ShouldEqual, 12)
				So(stats.LeadsProcessed, ShouldEqual, 24)
				So(stats.ResultsReturned, ShouldEqual, 24)
			})
		})
	})
}

func TestRunFailures(t *testing.T) {
	Convey("Given an invalid lead count", t, func() {
		_, err := Run(context.Background(), &Config{BaseURL: "http://127.0.0.1:1", NumLeads: 0})

		Convey("Then the run is rejected", func() {
			So(errors.Is(err, ErrNoLeads), ShouldBeTrue)
		})
	})

	Convey("Given an unhealthy service", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := Run(context.Background(), &Config{BaseURL: srv.URL, NumLeads: 1, Timeout: DefaultTimeout})

		Convey("Then the health step fails", func() {
			So(errors.Is(err, ErrUnexpectedStatus), ShouldBeTrue)
		})
	})
}

func TestVerifyResults(t *testing.T) {
	Convey("Given two generated leads", t, func() {
		ctx := context.Background()
		leads := GenerateLeads(ctx, 2)
		export := []byte("lead_id,name\r\n1,a\r\n2,b\r\n")
		stats := &Stats{LeadsInserted: 2, ByIntent: map[string]int{}}
		scored := ScoreResponse{Processed: 2}
		good := []Result{
			{LeadID: 1, Company: leads[0].Company, Score: 80, Intent: "High"},
			{LeadID: 2, Company: leads[1].Company, Score: 20, Intent: "Low"},
		}

		Convey("When the results are consistent", func() {
			err := verifyResults(ctx, &Config{}, leads, scored, good, export, stats)

			Convey("Then verification passes", func() {
				So(err, ShouldBeNil)
				So(stats.ExportRows, ShouldEqual, 2)
			})
		})

		Convey("When the results are out of order", func() {
			bad := []Result{good[1], good[0]}
			err := verifyResults(ctx, &Config{}, leads, scored, bad, export, stats)

			Convey("Then verification fails", func() {
				So(errors.Is(err, ErrVerification), ShouldBeTrue)
			})
		})

		Convey("When a score is out of range", func() {
			bad := []Result{good[0], good[1]}
			bad[0].Score = 101
			err := verifyResults(ctx, &Config{}, leads, scored, bad, export, stats)

			Convey("Then verification fails", func() {
				So(errors.Is(err, ErrVerification), ShouldBeTrue)
			})
		})

		Convey("When a generated lead is missing", func() {
			bad := []Result{good[0], {LeadID: 3, Company: "Other", Score: 10, Intent: "Low"}}
			err := verifyResults(ctx, &Config{}, leads, scored, bad, export, stats)

			Convey("Then verification fails", func() {
				So(errors.Is(err, ErrVerification), ShouldBeTrue)
			})
		})
	})
}
