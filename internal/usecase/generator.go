package usecase

import (
	"math"
	"time"

	"insureme-seeder/internal/domain/entity"
	"insureme-seeder/pkg/faker"

	"github.com/shopspring/decimal"
)

// ClaimIDScheme selects how claim identifiers are numbered
type ClaimIDScheme string

const (
	// ClaimIDSequence numbers claims densely, CLM0001..CLMn
	ClaimIDSequence ClaimIDScheme = "claim_sequence"
	// ClaimIDPolicyPosition uses the 1-based position of the claimed policy in
	// the flat policy list, leaving gaps for policies without a claim
	ClaimIDPolicyPosition ClaimIDScheme = "policy_position"
)

// Generation windows
const (
	minCustomerAge         = 18
	maxCustomerAge         = 80
	customerHistoryYears   = 5
	maxCustomerUpdateDays  = 365
	profileRetrievalYears  = 2
	policyStartWindowYears = 5
)

// GeneratorOptions tunes a Generator
type GeneratorOptions struct {
	ClaimProbability float64
	ClaimIDScheme    ClaimIDScheme
}

// Generator builds the synthetic dataset. Every record is a function of its
// index, its upstream record, the random source and the generation instant.
type Generator struct {
	fake faker.Source
	now  time.Time
	opts GeneratorOptions
}

// NewGenerator creates a generator that treats now as the generation instant
func NewGenerator(fake faker.Source, now time.Time, opts GeneratorOptions) *Generator {
	if opts.ClaimIDScheme == "" {
		opts.ClaimIDScheme = ClaimIDSequence
	}

	return &Generator{
		fake: fake,
		now:  now.UTC().Truncate(time.Microsecond),
		opts: opts,
	}
}

// Generate runs the four stages in order for n customers
func (g *Generator) Generate(n int) entity.Dataset {
	customers := g.Customers(n)
	profiles := g.FinancialProfiles(customers)
	policies := g.Policies(customers)
	claims := g.Claims(policies)

	return entity.Dataset{
		Customers:         customers,
		FinancialProfiles: profiles,
		Policies:          policies,
		Claims:            claims,
	}
}

// Customers generates n customers, CUST001..CUSTn
func (g *Generator) Customers(n int) []entity.Customer {
	customers := make([]entity.Customer, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		customers = append(customers, g.Customer(i))
	}
	return customers
}

// Customer generates the customer at 1-based index
func (g *Generator) Customer(index int) entity.Customer {
	earliestDOB, latestDOB := birthDateWindow(g.now)
	createdAt := g.fake.TimeBetween(g.now.AddDate(-customerHistoryYears, 0, 0), g.now)

	return entity.Customer{
		CustomerID:  entity.CustomerID(index),
		FirstName:   g.fake.FirstName(),
		LastName:    g.fake.LastName(),
		Postcode:    g.fake.Postcode(),
		DateOfBirth: g.fake.DateBetween(earliestDOB, latestDOB),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt.AddDate(0, 0, g.fake.IntBetween(0, maxCustomerUpdateDays)),
	}
}

// FinancialProfiles generates exactly one profile per customer, keyed by the
// customer's position
func (g *Generator) FinancialProfiles(customers []entity.Customer) []entity.FinancialProfile {
	profiles := make([]entity.FinancialProfile, 0, len(customers))
	for i, c := range customers {
		profiles = append(profiles, g.FinancialProfile(i+1, c))
	}
	return profiles
}

// FinancialProfile generates the profile for the customer at 1-based index
func (g *Generator) FinancialProfile(index int, customer entity.Customer) entity.FinancialProfile {
	return entity.FinancialProfile{
		ProfileID:   entity.ProfileID(index),
		CustomerID:  customer.CustomerID,
		CreditScore: g.fake.IntBetween(entity.MinCreditScore, entity.MaxCreditScore),
		Source:      g.fake.Pick(entity.CreditSources),
		RetrievedAt: g.fake.DateBetween(g.now.AddDate(-profileRetrievalYears, 0, 0), g.now),
		CreatedAt:   g.now,
		UpdatedAt:   g.now,
	}
}

// Policies generates 1-3 policies per customer as one flat list in customer order
func (g *Generator) Policies(customers []entity.Customer) []entity.Policy {
	var policies []entity.Policy
	for i, c := range customers {
		policies = append(policies, g.PoliciesFor(i+1, c)...)
	}
	return policies
}

// PoliciesFor generates the policies of the customer at 1-based index
func (g *Generator) PoliciesFor(index int, customer entity.Customer) []entity.Policy {
	count := g.fake.IntBetween(entity.MinPoliciesPerCustomer, entity.MaxPoliciesPerCustomer)

	policies := make([]entity.Policy, 0, count)
	for seq := 1; seq <= count; seq++ {
		start := g.fake.DateBetween(g.now.AddDate(-policyStartWindowYears, 0, 0), g.now)
		term := g.fake.IntBetween(entity.MinPolicyTermDays, entity.MaxPolicyTermDays)

		policies = append(policies, entity.Policy{
			PolicyID:            entity.PolicyID(index, seq),
			CustomerID:          customer.CustomerID,
			PolicyType:          g.fake.Pick(entity.PolicyTypes),
			StartDate:           start,
			EndDate:             start.AddDate(0, 0, term),
			Status:              g.fake.Pick(entity.PolicyStatuses),
			AnnualPremiumAmount: g.money(entity.MinAnnualPremium, entity.MaxAnnualPremium),
			CreatedAt:           g.now,
			UpdatedAt:           g.now,
		})
	}
	return policies
}

// Claims walks the flat policy list and generates at most one claim per policy
func (g *Generator) Claims(policies []entity.Policy) []entity.Claim {
	var claims []entity.Claim
	for i, p := range policies {
		if !g.fake.Chance(g.opts.ClaimProbability) {
			continue
		}

		var id string
		switch g.opts.ClaimIDScheme {
		case ClaimIDPolicyPosition:
			id = entity.ClaimID(i + 1)
		default:
			id = entity.ClaimID(len(claims) + 1)
		}

		claims = append(claims, g.Claim(id, p.Ref()))
	}
	return claims
}

// Claim generates one claim against ref. The incident falls on a day within
// [StartDate, EndDate]; a degenerate or inverted range pins it to StartDate.
func (g *Generator) Claim(id string, ref entity.PolicyRef) entity.Claim {
	span := max(entity.DaysBetween(ref.StartDate, ref.EndDate), 0)
	incident := entity.Date(ref.StartDate).AddDate(0, 0, g.fake.IntBetween(0, span))
	reportDate := entity.Date(incident).AddDate(0, 0, g.fake.IntBetween(0, entity.MaxReportLagDays))

	return entity.Claim{
		ClaimID:          id,
		PolicyID:         ref.PolicyID,
		IncidentDateTime: incident,
		ReportDate:       reportDate,
		ClaimAmount:      g.money(entity.MinClaimAmount, entity.MaxClaimAmount),
		IncidentType:     g.fake.Pick(entity.IncidentTypes),
		IncidentLat:      round(g.fake.FloatBetween(entity.MinIncidentLat, entity.MaxIncidentLat), entity.CoordinatePlaces),
		IncidentLong:     round(g.fake.FloatBetween(entity.MinIncidentLong, entity.MaxIncidentLong), entity.CoordinatePlaces),
		IncidentLocation: g.fake.City(),
		Status:           g.fake.Pick(entity.ClaimStatuses),
		ImageID:          nil,
		CreatedAt:        g.now,
		UpdatedAt:        g.now,
	}
}

func (g *Generator) money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.fake.FloatBetween(min, max)).Round(entity.CurrencyPlaces)
}

// birthDateWindow returns the earliest and latest birth dates for which the
// age at now is within [minCustomerAge, maxCustomerAge]
func birthDateWindow(now time.Time) (time.Time, time.Time) {
	today := entity.Date(now)

	// AddDate normalises Feb 29 onto Mar 1, so nudge both ends onto the exact boundary
	latest := today.AddDate(-minCustomerAge, 0, 0)
	for entity.AgeAt(latest, now) < minCustomerAge {
		latest = latest.AddDate(0, 0, -1)
	}
	for entity.AgeAt(latest.AddDate(0, 0, 1), now) >= minCustomerAge {
		latest = latest.AddDate(0, 0, 1)
	}

	earliest := today.AddDate(-(maxCustomerAge + 1), 0, 0)
	for entity.AgeAt(earliest, now) > maxCustomerAge {
		earliest = earliest.AddDate(0, 0, 1)
	}
	for entity.AgeAt(earliest.AddDate(0, 0, -1), now) <= maxCustomerAge {
		earliest = earliest.AddDate(0, 0, -1)
	}

	return earliest, latest
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
