package intent

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/rules"
)

// Heuristic keyword sets. They are narrower than the rule layer's tiers.
var (
	FallbackDecisionMakers = []string{"ceo", "founder", "owner", "cto", "cfo", "coo"}
	FallbackInfluencers    = []string{"vp", "head", "director", "manager"}
	FallbackTargets        = []string{"saas", "software", "technology", "tech"}
	FallbackAdjacent       = []string{"consulting", "services", "fintech"}
)

type signals struct {
	decisionMaker bool
	influencer    bool
	target        bool
	adjacent      bool
}

type decision struct {
	match  func(signals) bool
	intent model.Intent
	points int
}

// decisions are evaluated in order; the last row always matches.
var decisions = []decision{ //nolint:gochecknoglobals // fixed policy table
	{func(s signals) bool { return s.decisionMaker && s.target }, model.IntentHigh, 45},
	{func(s signals) bool { return s.decisionMaker || (s.influencer && s.target) }, model.IntentMedium, 25},
	{func(s signals) bool { return s.influencer || s.adjacent }, model.IntentMedium, 15},
	{func(signals) bool { return true }, model.IntentLow, 5},
}

// Fallback classifies a lead from role and industry alone. It is total.
func Fallback(lead model.Lead) Classification {
	role := strings.ToLower(lead.Role)
	industry := strings.ToLower(lead.Industry)
	s := signals{
		decisionMaker: rules.ContainsAny(role, FallbackDecisionMakers),
		influencer:    rules.ContainsAny(role, FallbackInfluencers),
		target:        slices.Contains(FallbackTargets, industry),
		adjacent:      slices.Contains(FallbackAdjacent, industry),
	}

	d := decisions[len(decisions)-1]
	for _, row := range decisions {
		if row.match(s) {
			d = row
			break
		}
	}

	return Classification{
		Points: d.points,
		Intent: d.intent,
		Reasoning: fmt.Sprintf("Heuristic fallback: %s at %s company suggests %s intent.",
			role, industry, strings.ToLower(string(d.intent))),
		Source: SourceFallback,
	}
}
