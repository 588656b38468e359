package rules_test

import (
	"testing"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/rules"
	. "github.com/smartystreets/goconvey/convey"
)

func completeLead(role, industry string) model.Lead {
	return model.Lead{
		Name:        "Ada Lovelace",
		Role:        role,
		Company:     "Analytical Engines",
		Industry:    industry,
		Location:    "London",
		LinkedInBio: "Building computing machines",
	}
}

func TestRoleScore(t *testing.T) {
	Convey("Given role titles", t, func() {
		Convey("When the role names a decision maker", func() {
			Convey("Then it scores 20 regardless of case", func() {
				So(rules.RoleScore("CEO"), ShouldEqual, 20)
				So(rules.RoleScore("Co-Founder"), ShouldEqual, 20)
				So(rules.RoleScore("Chief Revenue Officer"), ShouldEqual, 20)
			})
		})

		Convey("When the role matches both decision maker and senior keywords", func() {
			Convey("Then the decision maker tier wins", func() {
				So(rules.RoleScore("VP and Co-Founder"), ShouldEqual, 20)
				So(rules.RoleScore("Director, Office of the CTO"), ShouldEqual, 20)
			})
		})

		Convey("When the role is senior", func() {
			So(rules.RoleScore("VP Sales"), ShouldEqual, 15)
			So(rules.RoleScore("Vice President of Marketing"), ShouldEqual, 15)
			So(rules.RoleScore("Head of Growth"), ShouldEqual, 15)
		})

		Convey("When the role contains a decision maker keyword inside another word", func() {
			Convey("Then substring matching still applies", func() {
				// "director" contains "cto"
				So(rules.RoleScore("Engineering Director"), ShouldEqual, 20)
			})
		})

		Convey("When the role is an influencer", func() {
			So(rules.RoleScore("Product Manager"), ShouldEqual, 10)
			So(rules.RoleScore("Tech Lead"), ShouldEqual, 10)
			So(rules.RoleScore("Senior Engineer"), ShouldEqual, 10)
			So(rules.RoleScore("Solutions Architect"), ShouldEqual, 10)
		})

		Convey("When the role matches nothing", func() {
			So(rules.RoleScore("Analyst"), ShouldEqual, 0)
			So(rules.RoleScore(""), ShouldEqual, 0)
		})
	})
}

func TestIndustryScore(t *testing.T) {
	Convey("Given industries", t, func() {
		Convey("Then ICP industries score 20 case-insensitively", func() {
			So(rules.IndustryScore("SaaS"), ShouldEqual, 20)
			So(rules.IndustryScore("saas"), ShouldEqual, 20)
			So(rules.IndustryScore("TECH"), ShouldEqual, 20)
		})

		Convey("And adjacent industries score 12", func() {
			So(rules.IndustryScore("Consulting"), ShouldEqual, 12)
			So(rules.IndustryScore("Healthcare Tech"), ShouldEqual, 12)
			So(rules.IndustryScore("edtech"), ShouldEqual, 12)
		})

		Convey("And neutral industries score 5", func() {
			So(rules.IndustryScore("Finance"), ShouldEqual, 5)
			So(rules.IndustryScore("manufacturing"), ShouldEqual, 5)
		})

		Convey("And the match is exact, not a substring", func() {
			So(rules.IndustryScore("SaaS Platform"), ShouldEqual, 0)
			So(rules.IndustryScore(" saas"), ShouldEqual, 0)
			So(rules.IndustryScore("Retail"), ShouldEqual, 0)
			So(rules.IndustryScore(""), ShouldEqual, 0)
		})
	})
}

func TestCompletenessScore(t *testing.T) {
	Convey("Given a lead with every field filled", t, func() {
		lead := completeLead("Analyst", "Retail")

		Convey("Then completeness contributes 10", func() {
			So(rules.CompletenessScore(lead), ShouldEqual, 10)
		})

		Convey("When any single field is blank", func() {
			blanks := []func(*model.Lead){
				func(l *model.Lead) { l.Name = "" },
				func(l *model.Lead) { l.Role = " " },
				func(l *model.Lead) { l.Company = "\t" },
				func(l *model.Lead) { l.Industry = "" },
				func(l *model.Lead) { l.Location = "\n" },
				func(l *model.Lead) { l.LinkedInBio = "" },
			}

			Convey("Then completeness drops to 0 and the other sub-scores are unaffected", func() {
				for _, blank := range blanks {
					l := completeLead("CEO", "SaaS")
					blank(&l)
					b := rules.Explain(l)
					So(b.Completeness, ShouldEqual, 0)
				}

				l := completeLead("CEO", "SaaS")
				l.LinkedInBio = ""
				b := rules.Explain(l)
				So(b.Role, ShouldEqual, 20)
				So(b.Industry, ShouldEqual, 20)
			})
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given the rule scorer", t, func() {
		Convey("When every sub-score is at its maximum", func() {
			lead := completeLead("CEO", "SaaS")

			Convey("Then the total is exactly 50", func() {
				So(rules.Score(lead), ShouldEqual, 50)
				So(rules.Explain(lead), ShouldResemble, rules.Breakdown{Role: 20, Industry: 20, Completeness: 10})
			})
		})

		Convey("When the sub-scores would exceed the cap", func() {
			b := rules.Breakdown{Role: 20, Industry: 20, Completeness: 30}

			Convey("Then Total is capped at 50", func() {
				So(b.Total(), ShouldEqual, rules.MaxScore)
			})
		})

		Convey("When the lead is empty", func() {
			Convey("Then the score is 0 and nothing panics", func() {
				So(func() { rules.Score(model.Lead{}) }, ShouldNotPanic)
				So(rules.Score(model.Lead{}), ShouldEqual, 0)
			})
		})

		Convey("When the lead is an analyst in retail without a bio", func() {
			lead := completeLead("Analyst", "Retail")
			lead.LinkedInBio = ""

			Convey("Then the score is 0", func() {
				So(rules.Score(lead), ShouldEqual, 0)
			})
		})

		Convey("When scoring many shapes of input", func() {
			roles := []string{"", "CEO", "vp", "manager", "analyst", "Head of CFO office"}
			industries := []string{"", "SaaS", "fintech", "education", "retail"}

			Convey("Then every score stays within 0..50", func() {
				for _, r := range roles {
					for _, ind := range industries {
						s := rules.Score(completeLead(r, ind))
						So(s, ShouldBeBetweenOrEqual, 0, 50)
					}
				}
			})
		})
	})
}
