package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy types
const (
	PolicyTypeMotor = "MOTOR"
	PolicyTypeHome  = "HOME"
)

// Policy statuses. Descriptive only, transitions are not enforced.
const (
	PolicyStatusPending    = "pending"
	PolicyStatusActive     = "active"
	PolicyStatusLapsed     = "lapsed"
	PolicyStatusTerminated = "terminated"
	PolicyStatusSettled    = "settled"
	PolicyStatusExpired    = "expired"
)

var (
	PolicyTypes    = []string{PolicyTypeMotor, PolicyTypeHome}
	PolicyStatuses = []string{
		PolicyStatusPending,
		PolicyStatusActive,
		PolicyStatusLapsed,
		PolicyStatusTerminated,
		PolicyStatusSettled,
		PolicyStatusExpired,
	}
)

// Policy term and premium bounds
const (
	MinPoliciesPerCustomer = 1
	MaxPoliciesPerCustomer = 3
	MinPolicyTermDays      = 365
	MaxPolicyTermDays      = 1095
	MinAnnualPremium       = 200.0
	MaxAnnualPremium       = 2000.0
)

// Policy is a single insurance contract held by a customer
type Policy struct {
	PolicyID            string
	CustomerID          string
	AnnualPremiumAmount decimal.Decimal
	PolicyType          string
	StartDate           time.Time // date only
	EndDate             time.Time // date only
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PolicyRef carries the policy fields the claim stage depends on
type PolicyRef struct {
	PolicyID  string
	StartDate time.Time
	EndDate   time.Time
}

// Ref projects the policy onto the fields claims require
func (p Policy) Ref() PolicyRef {
	return PolicyRef{
		PolicyID:  p.PolicyID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

// TermDays returns the number of whole days between start and end
func (p Policy) TermDays() int {
	return DaysBetween(p.StartDate, p.EndDate)
}

// Values returns the row in PoliciesTable column order
func (p Policy) Values() []any {
	return []any{
		p.PolicyID,
		p.CustomerID,
		p.AnnualPremiumAmount,
		p.PolicyType,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	}
}
