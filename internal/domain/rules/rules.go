// Package rules implements the deterministic rule layer of lead scoring.
//
// Score maps a lead to 0..50 points from role seniority, industry fit and
// data completeness. It never fails; empty fields simply contribute nothing.
package rules

import (
	"slices"
	"strings"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// MaxScore caps the rule layer contribution.
const MaxScore = 50

// Points per tier.
const (
	decisionMakerPoints = 20
	seniorPoints        = 15
	influencerPoints    = 10

	icpIndustryPoints      = 20
	adjacentIndustryPoints = 12
	neutralIndustryPoints  = 5

	completenessPoints = 10
)

// Role keyword sets, matched as substrings of the lowercased role.
var (
	DecisionMakerRoles = []string{"ceo", "founder", "owner", "cto", "cfo", "coo", "chief"}
	SeniorRoles        = []string{"vp", "vice president", "head", "director"}
	InfluencerRoles    = []string{"manager", "lead", "senior", "principal", "architect"}
)

// Industry sets, matched exactly against the lowercased industry.
var (
	ICPIndustries      = []string{"saas", "software", "technology", "tech"}
	AdjacentIndustries = []string{"consulting", "services", "fintech", "healthcare tech", "edtech"}
	NeutralIndustries  = []string{"finance", "healthcare", "education", "manufacturing"}
)

type tier struct {
	keywords []string
	points   int
}

// Tiers are evaluated in order; the first match wins.
var (
	roleTiers = []tier{
		{DecisionMakerRoles, decisionMakerPoints},
		{SeniorRoles, seniorPoints},
		{InfluencerRoles, influencerPoints},
	}
	industryTiers = []tier{
		{ICPIndustries, icpIndustryPoints},
		{AdjacentIndustries, adjacentIndustryPoints},
		{NeutralIndustries, neutralIndustryPoints},
	}
)

// Breakdown holds the individual sub-scores.
type Breakdown struct {
	Role         int
	Industry     int
	Completeness int
}

// Total sums the sub-scores and caps the result at MaxScore.
func (b Breakdown) Total() int {
	return min(MaxScore, b.Role+b.Industry+b.Completeness)
}

// Score returns the rule score of lead in [0, MaxScore].
func Score(lead model.Lead) int {
	return Explain(lead).Total()
}

// Explain returns the sub-scores behind Score.
func Explain(lead model.Lead) Breakdown {
	return Breakdown{
		Role:         RoleScore(lead.Role),
		Industry:     IndustryScore(lead.Industry),
		Completeness: CompletenessScore(lead),
	}
}

// RoleScore grades seniority from the role title.
func RoleScore(role string) int {
	r := strings.ToLower(role)
	for _, t := range roleTiers {
		if ContainsAny(r, t.keywords) {
			return t.points
		}
	}
	return 0
}

// IndustryScore grades how close the industry is to the ideal customer profile.
func IndustryScore(industry string) int {
	ind := strings.ToLower(industry)
	for _, t := range industryTiers {
		if slices.Contains(t.keywords, ind) {
			return t.points
		}
	}
	return 0
}

// CompletenessScore awards points only when every required field is filled.
func CompletenessScore(lead model.Lead) int {
	for _, f := range RequiredFields(lead) {
		if strings.TrimSpace(f) == "" {
			return 0
		}
	}
	return completenessPoints
}

// RequiredFields returns name, role, company, industry, location and bio.
func RequiredFields(lead model.Lead) []string {
	return []string{lead.Name, lead.Role, lead.Company, lead.Industry, lead.Location, lead.LinkedInBio}
}

// ContainsAny reports whether s contains any keyword as a substring.
func ContainsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
