package entity

import (
	"fmt"
	"time"
)

// CurrencyPlaces is the rounding applied to every money amount
const CurrencyPlaces = 2

// Identifier formats
const (
	customerIDFormat = "CUST%03d"
	profileIDFormat  = "CFP%03d"
	policyIDFormat   = "POL%03d_%d"
	claimIDFormat    = "CLM%04d"
)

// CustomerID formats the 1-based customer index
func CustomerID(index int) string {
	return fmt.Sprintf(customerIDFormat, index)
}

// ProfileID formats the 1-based customer index as a profile key
func ProfileID(index int) string {
	return fmt.Sprintf(profileIDFormat, index)
}

// PolicyID formats a customer index and the 1-based policy number within that customer
func PolicyID(customerIndex, seq int) string {
	return fmt.Sprintf(policyIDFormat, customerIndex, seq)
}

// ClaimID formats a 1-based claim number
func ClaimID(n int) string {
	return fmt.Sprintf(claimIDFormat, n)
}

// Dataset is the full output of one generation pass
type Dataset struct {
	Customers         []Customer
	FinancialProfiles []FinancialProfile
	Policies          []Policy
	Claims            []Claim
}

// Counts returns the number of generated records per entity
func (d Dataset) Counts() map[string]int {
	return map[string]int{
		"customers":          len(d.Customers),
		"financial_profiles": len(d.FinancialProfiles),
		"policies":           len(d.Policies),
		"claims":             len(d.Claims),
	}
}

// Date truncates t to midnight UTC of its calendar day
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b (negative if b is earlier)
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// AgeAt returns the completed years between dob and at
func AgeAt(dob, at time.Time) int {
	dob, at = dob.UTC(), at.UTC()
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}
