package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Incident types
const (
	IncidentAccident  = "Accident"
	IncidentTheft     = "Theft"
	IncidentFire      = "Fire"
	IncidentFlood     = "Flood"
	IncidentVandalism = "Vandalism"
)

// Claim statuses
const (
	ClaimStatusReported    = "reported"
	ClaimStatusUnderReview = "under_review"
	ClaimStatusApproved    = "approved"
	ClaimStatusRejected    = "rejected"
	ClaimStatusSettled     = "settled"
)

var (
	IncidentTypes = []string{
		IncidentAccident,
		IncidentTheft,
		IncidentFire,
		IncidentFlood,
		IncidentVandalism,
	}
	ClaimStatuses = []string{
		ClaimStatusReported,
		ClaimStatusUnderReview,
		ClaimStatusApproved,
		ClaimStatusRejected,
		ClaimStatusSettled,
	}
)

// Claim bounds. The lat/long box roughly covers Great Britain.
const (
	MinClaimAmount   = 100.0
	MaxClaimAmount   = 5000.0
	MaxReportLagDays = 10
	MinIncidentLat   = 50.0
	MaxIncidentLat   = 55.0
	MinIncidentLong  = -5.0
	MaxIncidentLong  = 1.0
	CoordinatePlaces = 6
)

// Claim is at most one incident reported against a policy
type Claim struct {
	ClaimID          string
	PolicyID         string
	IncidentDateTime time.Time
	ReportDate       time.Time // date only
	ClaimAmount      decimal.Decimal
	IncidentType     string
	IncidentLat      float64
	IncidentLong     float64
	IncidentLocation string
	Status           string
	ImageID          *string // filled in later by the image upload pipeline
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Values returns the row in ClaimsTable column order
func (c Claim) Values() []any {
	var imageID any
	if c.ImageID != nil {
		imageID = *c.ImageID
	}

	return []any{
		c.ClaimID,
		c.PolicyID,
		c.IncidentDateTime,
		c.ReportDate,
		c.ClaimAmount,
		c.IncidentType,
		c.IncidentLat,
		c.IncidentLong,
		c.IncidentLocation,
		c.Status,
		imageID,
		c.CreatedAt,
		c.UpdatedAt,
	}
}
