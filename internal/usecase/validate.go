package usecase

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"insureme-seeder/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ErrInvalidDataset is returned when a generated dataset breaks a structural
// or value-range property and must not be loaded
var ErrInvalidDataset = errors.New("invalid dataset")

// ValidateDataset checks referential integrity, cardinality, value ranges and
// temporal ordering. All violations are reported together.
func ValidateDataset(ds entity.Dataset, now time.Time) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	customers := make(map[string]bool, len(ds.Customers))
	for _, c := range ds.Customers {
		if customers[c.CustomerID] {
			fail("duplicate customer %s", c.CustomerID)
		}
		customers[c.CustomerID] = true

		if age := entity.AgeAt(c.DateOfBirth, now); age < minCustomerAge || age > maxCustomerAge {
			fail("customer %s: age %d outside [%d,%d]", c.CustomerID, age, minCustomerAge, maxCustomerAge)
		}
		if c.UpdatedAt.Before(c.CreatedAt) {
			fail("customer %s: updated_at before created_at", c.CustomerID)
		}
	}

	profiles := make(map[string]int, len(ds.FinancialProfiles))
	for _, p := range ds.FinancialProfiles {
		if !customers[p.CustomerID] {
			fail("profile %s references unknown customer %s", p.ProfileID, p.CustomerID)
		}
		profiles[p.CustomerID]++

		if p.CreditScore < entity.MinCreditScore || p.CreditScore > entity.MaxCreditScore {
			fail("profile %s: credit score %d outside [%d,%d]", p.ProfileID, p.CreditScore, entity.MinCreditScore, entity.MaxCreditScore)
		}
		if !slices.Contains(entity.CreditSources, p.Source) {
			fail("profile %s: unknown source %q", p.ProfileID, p.Source)
		}
	}

	policies := make(map[string]entity.PolicyRef, len(ds.Policies))
	perCustomer := make(map[string]int, len(ds.Customers))
	for _, p := range ds.Policies {
		if _, ok := policies[p.PolicyID]; ok {
			fail("duplicate policy %s", p.PolicyID)
		}
		policies[p.PolicyID] = p.Ref()

		if !customers[p.CustomerID] {
			fail("policy %s references unknown customer %s", p.PolicyID, p.CustomerID)
		}
		perCustomer[p.CustomerID]++

		if term := p.TermDays(); term < entity.MinPolicyTermDays || term > entity.MaxPolicyTermDays {
			fail("policy %s: term %d days outside [%d,%d]", p.PolicyID, term, entity.MinPolicyTermDays, entity.MaxPolicyTermDays)
		}
		if !inRange(p.AnnualPremiumAmount, entity.MinAnnualPremium, entity.MaxAnnualPremium) {
			fail("policy %s: premium %s outside [%v,%v]", p.PolicyID, p.AnnualPremiumAmount, entity.MinAnnualPremium, entity.MaxAnnualPremium)
		}
		if !roundedTo(p.AnnualPremiumAmount, entity.CurrencyPlaces) {
			fail("policy %s: premium %s has more than %d decimal places", p.PolicyID, p.AnnualPremiumAmount, entity.CurrencyPlaces)
		}
		if !slices.Contains(entity.PolicyTypes, p.PolicyType) {
			fail("policy %s: unknown type %q", p.PolicyID, p.PolicyType)
		}
		if !slices.Contains(entity.PolicyStatuses, p.Status) {
			fail("policy %s: unknown status %q", p.PolicyID, p.Status)
		}
	}

	for _, c := range ds.Customers {
		if profiles[c.CustomerID] != 1 {
			fail("customer %s has %d financial profiles, want 1", c.CustomerID, profiles[c.CustomerID])
		}
		if n := perCustomer[c.CustomerID]; n < entity.MinPoliciesPerCustomer || n > entity.MaxPoliciesPerCustomer {
			fail("customer %s has %d policies, want [%d,%d]", c.CustomerID, n, entity.MinPoliciesPerCustomer, entity.MaxPoliciesPerCustomer)
		}
	}

	claimed := make(map[string]bool, len(ds.Claims))
	claimIDs := make(map[string]bool, len(ds.Claims))
	for _, c := range ds.Claims {
		if claimIDs[c.ClaimID] {
			fail("duplicate claim %s", c.ClaimID)
		}
		claimIDs[c.ClaimID] = true

		ref, ok := policies[c.PolicyID]
		if !ok {
			fail("claim %s references unknown policy %s", c.ClaimID, c.PolicyID)
			continue
		}
		if claimed[c.PolicyID] {
			fail("policy %s has more than one claim", c.PolicyID)
		}
		claimed[c.PolicyID] = true

		incident := entity.Date(c.IncidentDateTime)
		if incident.Before(entity.Date(ref.StartDate)) || (!ref.EndDate.Before(ref.StartDate) && incident.After(entity.Date(ref.EndDate))) {
			fail("claim %s: incident %s outside policy term", c.ClaimID, incident.Format(time.DateOnly))
		}
		if lag := entity.DaysBetween(c.IncidentDateTime, c.ReportDate); lag < 0 || lag > entity.MaxReportLagDays {
			fail("claim %s: reported %d days after incident", c.ClaimID, lag)
		}
		if !inRange(c.ClaimAmount, entity.MinClaimAmount, entity.MaxClaimAmount) {
			fail("claim %s: amount %s outside [%v,%v]", c.ClaimID, c.ClaimAmount, entity.MinClaimAmount, entity.MaxClaimAmount)
		}
		if !roundedTo(c.ClaimAmount, entity.CurrencyPlaces) {
			fail("claim %s: amount %s has more than %d decimal places", c.ClaimID, c.ClaimAmount, entity.CurrencyPlaces)
		}
		if c.IncidentLat < entity.MinIncidentLat || c.IncidentLat > entity.MaxIncidentLat ||
			c.IncidentLong < entity.MinIncidentLong || c.IncidentLong > entity.MaxIncidentLong {
			fail("claim %s: incident coordinates (%v,%v) outside bounding box", c.ClaimID, c.IncidentLat, c.IncidentLong)
		}
		if round(c.IncidentLat, entity.CoordinatePlaces) != c.IncidentLat || round(c.IncidentLong, entity.CoordinatePlaces) != c.IncidentLong {
			fail("claim %s: incident coordinates (%v,%v) have more than %d decimal places", c.ClaimID, c.IncidentLat, c.IncidentLong, entity.CoordinatePlaces)
		}
		if !slices.Contains(entity.IncidentTypes, c.IncidentType) {
			fail("claim %s: unknown incident type %q", c.ClaimID, c.IncidentType)
		}
		if !slices.Contains(entity.ClaimStatuses, c.Status) {
			fail("claim %s: unknown status %q", c.ClaimID, c.Status)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
}

func inRange(v decimal.Decimal, min, max float64) bool {
	return v.GreaterThanOrEqual(decimal.NewFromFloat(min)) && v.LessThanOrEqual(decimal.NewFromFloat(max))
}


func roundedTo(v decimal.Decimal, places int32) bool {
	return v.Equal(v.Round(places))
}
