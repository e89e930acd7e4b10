package entity

import "time"

// Customer is the base identity record every other entity hangs off
type Customer struct {
	CustomerID  string
	FirstName   string
	LastName    string
	Postcode    string
	DateOfBirth time.Time // date only, midnight UTC
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Values returns the row in CustomersTable column order
func (c Customer) Values() []any {
	return []any{
		c.CustomerID,
		c.FirstName,
		c.LastName,
		c.Postcode,
		c.DateOfBirth,
		c.CreatedAt,
		c.UpdatedAt,
	}
}
