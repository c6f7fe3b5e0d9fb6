package entity

import (
	"time"
)

type Vendor struct {
	ID               string   `json:"id"`
	BusinessName     string   `json:"business_name"`
	Category         string   `json:"category"`
	Status           Status   `json:"status"`
	SubscriptionPlan string   `json:"subscription_plan"`
	Regions          []string `json:"regions"`
	ListingsCount    int      `json:"listings_count"`
	Rating           float64  `json:"rating"` // 0.0-5.0

	// Only meaningful while Status is trial
	TrialDaysLeft *int `json:"trial_days_left,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (v Vendor) EntityID() string     { return v.ID }
func (v Vendor) EntityKind() Kind     { return KindVendor }
func (v Vendor) EntityStatus() Status { return v.Status }

func (v *Vendor) SetStatus(status Status) {
	v.Status = status
	if status != StatusTrial {
		v.TrialDaysLeft = nil
	}
}

func (v Vendor) HasRegion(region string) bool {
	for _, r := range v.Regions {
		if r == region {
			return true
		}
	}
	return false
}
