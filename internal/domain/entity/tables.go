package entity

// Table names one persisted relation and its insert column order
type Table struct {
	Name    string
	Columns []string
}

var (
	CustomersTable = Table{
		Name: "customers",
		Columns: []string{
			"customer_id", "first_name", "second_name", "postcode", "d_o_b",
			"created_at", "updated_at",
		},
	}

	FinancialProfilesTable = Table{
		Name: "customer_financial_profile",
		Columns: []string{
			"profile_id", "customer_id", "credit_score", "source", "retrieved_at",
			"created_at", "updated_at",
		},
	}

	PoliciesTable = Table{
		Name: "policy",
		Columns: []string{
			"policy_id", "customer_id", "annual_premium_amount", "policy_type",
			"start_date", "end_date", "status", "created_at", "updated_at",
		},
	}

	ClaimsTable = Table{
		Name: "claims",
		Columns: []string{
			"claim_id", "policy_id", "incident_date_time", "report_date", "claim_amount",
			"incident_type", "incident_lat", "incident_long", "incident_location",
			"status", "image_id", "created_at", "updated_at",
		},
	}
)

// Rows converts a slice of records into positional rows
func Rows[T interface{ Values() []any }](records []T) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values())
	}
	return rows
}
