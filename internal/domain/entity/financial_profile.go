package entity

import "time"

// Credit bureau sources
const (
	SourceExperian   = "Experian"
	SourceEquifax    = "Equifax"
	SourceTransUnion = "TransUnion"
)

// Credit score bounds
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// CreditSources is the closed set a profile's source is drawn from
var CreditSources = []string{SourceExperian, SourceEquifax, SourceTransUnion}

// FinancialProfile holds the credit snapshot of exactly one customer
type FinancialProfile struct {
	ProfileID   string
	CustomerID  string
	CreditScore int
	Source      string
	RetrievedAt time.Time // date only
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Values returns the row in FinancialProfilesTable column order
func (p FinancialProfile) Values() []any {
	return []any{
		p.ProfileID,
		p.CustomerID,
		p.CreditScore,
		p.Source,
		p.RetrievedAt,
		p.CreatedAt,
		p.UpdatedAt,
	}
}
