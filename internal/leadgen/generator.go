package leadgen

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/leadcsv"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// Pools the generator draws from. Roles and industries span every scoring
// tier so a run exercises the whole rule table.
var ( //nolint:gochecknoglobals // fixed pools
	firstNames = []string{"Ava", "Noah", "Mia", "Liam", "Zoe", "Omar", "Ines", "Kai", "Lena", "Ravi"}
	lastNames  = []string{"Patel", "Lind", "Okafor", "Garcia", "Chen", "Novak", "Silva", "Haddad", "Berg", "Ito"}
	roles      = []string{
		"CEO", "Co-Founder", "CTO", "Chief Revenue Officer",
		"VP Sales", "Head of Growth", "Engineering Director",
		"Product Manager", "Senior Engineer", "Solutions Architect",
		"Analyst", "Intern", "",
	}
	industries = []string{
		"SaaS", "Software", "Technology",
		"Consulting", "Fintech", "EdTech",
		"Finance", "Healthcare", "Manufacturing",
		"Retail", "Hospitality", "",
	}
	companyStems = []string{"Flow", "Shop", "Data", "Cloud", "Bright", "North", "Blue", "Peak"}
	companyTails = []string{"Metrics", "Co", "Labs", "Works", "Systems", "Partners"}
	locations    = []string{"Berlin", "Oslo", "Lagos", "Austin", "Pune", "Lisbon", "Toronto", ""}
	bios         = []string{
		"Scaling outbound teams and evaluating automation tools.",
		"Runs a lean ops team, always looking at new vendors.",
		"Focused on data quality and pipeline reliability.",
		"Happy with the current stack.",
		"",
	}
)

// pick returns a random element of pool using crypto/rand.
func pick(pool []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return pool[0]
	}
	return pool[n.Int64()]
}

// GenerateLeads creates n synthetic leads. Company names carry a short unique
// suffix so rows are easy to trace in the results.
func GenerateLeads(ctx context.Context, n int) []model.Lead {
	logger.Get().Info(ctx, "generating leads", logger.Int("numLeads", n))

	leads := make([]model.Lead, n)
	for i := range leads {
		suffix := uuid.NewString()[:8]
		leads[i] = model.Lead{
			Name:        pick(firstNames) + " " + pick(lastNames),
			Role:        pick(roles),
			Company:     pick(companyStems) + pick(companyTails) + "-" + suffix,
			Industry:    pick(industries),
			Location:    pick(locations),
			LinkedInBio: pick(bios),
		}
	}
	return leads
}

// WriteCSV writes leads in the upload format.
func WriteCSV(w io.Writer, leads []model.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(leadcsv.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, l := range leads {
		row := []string{l.Name, l.Role, l.Company, l.Industry, l.Location, l.LinkedInBio}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write lead %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
