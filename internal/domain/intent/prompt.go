package intent

import (
	"strings"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// Render substitutes offer and lead fields into template. Each field has two
// spellings, {offer[name]} and {offer.name}. Anything else is left as is.
func Render(template string, offer model.Offer, lead model.Lead) string {
	pairs := []struct {
		scope, key, value string
	}{
		{"offer", "name", offer.Name},
		{"offer", "value_props", offer.ValueProps},
		{"offer", "ideal_use_cases", offer.IdealUseCases},
		{"lead", "name", lead.Name},
		{"lead", "role", lead.Role},
		{"lead", "company", lead.Company},
		{"lead", "industry", lead.Industry},
		{"lead", "location", lead.Location},
		{"lead", "linkedin_bio", lead.LinkedInBio},
	}

	oldnew := make([]string, 0, len(pairs)*4)
	for _, p := range pairs {
		oldnew = append(oldnew,
			"{"+p.scope+"["+p.key+"]}", p.value,
			"{"+p.scope+"."+p.key+"}", p.value,
		)
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}
