package leadcsv_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/leadcsv"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given a well formed upload", t, func() {
		in := "name,role,company,industry,location,linkedin_bio,extra\n" +
			"Ava Patel,Head of Growth,FlowMetrics,SaaS,Berlin,\"Growth, data\",x\n" +
			"\n" +
			"   \n" +
			",,,,,\n" +
			"Bo,Analyst,Shop,Retail\n"

		leads, err := leadcsv.Parse(strings.NewReader(in))

		Convey("Then rows become leads", func() {
			So(err, ShouldBeNil)
			So(leads, ShouldHaveLength, 3)
			So(leads[0], ShouldResemble, model.Lead{
				Name: "Ava Patel", Role: "Head of Growth", Company: "FlowMetrics",
				Industry: "SaaS", Location: "Berlin", LinkedInBio: "Growth, data",
			})
		})

		Convey("Then a row of empty cells is an empty lead", func() {
			So(leads[1], ShouldResemble, model.Lead{})
		})

		Convey("Then short rows leave fields empty", func() {
			So(leads[2].Industry, ShouldEqual, "Retail")
			So(leads[2].Location, ShouldEqual, "")
			So(leads[2].LinkedInBio, ShouldEqual, "")
		})
	})

	Convey("Given columns in another order with a BOM", t, func() {
		in := "\xEF\xBB\xBFlinkedin_bio,location,industry,company,role,name\r\nbio,Oslo,Tech,Acme,CTO,Kim\r\n"
		leads, err := leadcsv.Parse(strings.NewReader(in))
		So(err, ShouldBeNil)
		So(leads, ShouldHaveLength, 1)
		So(leads[0].Name, ShouldEqual, "Kim")
		So(leads[0].LinkedInBio, ShouldEqual, "bio")
	})

	Convey("Given invalid UTF-8 bytes", t, func() {
		in := "name,role,company,industry,location,linkedin_bio\nJo\xff,CEO,A,SaaS,X,Y\n"
		leads, err := leadcsv.Parse(strings.NewReader(in))
		So(err, ShouldBeNil)
		So(leads[0].Name, ShouldEqual, "Jo")
	})

	Convey("Given missing columns", t, func() {
		_, err := leadcsv.Parse(strings.NewReader("name,role,company\nA,B,C\n"))

		Convey("Then every missing column is named", func() {
			So(errors.Is(err, leadcsv.ErrMissingColumns), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "missing columns: ['industry', 'location', 'linkedin_bio']")
		})
	})

	Convey("Given an empty upload", t, func() {
		_, err := leadcsv.Parse(strings.NewReader(""))
		So(errors.Is(err, leadcsv.ErrMissingColumns), ShouldBeTrue)
	})

	Convey("Given a header only", t, func() {
		leads, err := leadcsv.Parse(strings.NewReader("name,role,company,industry,location,linkedin_bio\n"))
		So(err, ShouldBeNil)
		So(leads, ShouldBeEmpty)
	})
}

func TestWriteResults(t *testing.T) {
	Convey("Given results to export", t, func() {
		results := []model.ResultView{
			{Result: model.Result{LeadID: 1, Score: 95, Intent: model.IntentHigh, Reasoning: "Strong fit"},
				Name: "Ava", Company: "Flow, Inc", Role: "CEO", Industry: "SaaS"},
			{Result: model.Result{LeadID: 2, Score: 5, Intent: model.IntentLow, Reasoning: "line one\nsaid \"no\""},
				Name: " Bo", Company: "Shop", Role: "Analyst", Industry: "Retail"},
		}

		var buf bytes.Buffer
		err := leadcsv.WriteResults(&buf, results)

		Convey("Then rows use minimal quoting and CRLF", func() {
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual,
				"lead_id,name,company,role,industry,score,intent,reasoning\r\n"+
					"1,Ava,\"Flow, Inc\",CEO,SaaS,95,High,Strong fit\r\n"+
					"2, Bo,Shop,Analyst,Retail,5,Low,\"line one said \"\"no\"\"\"\r\n")
		})
	})

	Convey("Given a long reasoning", t, func() {
		var buf bytes.Buffer
		long := strings.Repeat("a", 1500)
		err := leadcsv.WriteResults(&buf, []model.ResultView{{Result: model.Result{LeadID: 3, Reasoning: long}}})
		So(err, ShouldBeNil)

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
		So(lines, ShouldHaveLength, 2)
		So(lines[1], ShouldEqual, "3,,,,,0,,"+strings.Repeat("a", leadcsv.MaxExportReasoning))
	})

	Convey("Given no results", t, func() {
		var buf bytes.Buffer
		So(leadcsv.WriteResults(&buf, nil), ShouldBeNil)
		So(buf.String(), ShouldEqual, "lead_id,name,company,role,industry,score,intent,reasoning\r\n")
	})
}
