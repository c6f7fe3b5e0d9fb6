package entity

import (
	"time"
)

type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	VendorID    string    `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	Price       float64   `json:"price"`
	Regions     []string  `json:"regions"`
	Bookings    int       `json:"bookings"`
	Rating      float64   `json:"rating"` // 0.0-5.0
	ReviewCount int       `json:"review_count"`

	// Present if and only if Status is flagged
	FlagReason string     `json:"flag_reason,omitempty"`
	FlaggedAt  *time.Time `json:"flagged_at,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (l Listing) EntityID() string     { return l.ID }
func (l Listing) EntityKind() Kind     { return KindListing }
func (l Listing) EntityStatus() Status { return l.Status }

func (l *Listing) SetStatus(status Status) {
	l.Status = status
	if status != StatusFlagged {
		l.FlagReason = ""
		l.FlaggedAt = nil
	}
}

// HasRegion reports whether the listing is offered in the given region.
// Exact membership, not prefix or fuzzy match.
func (l Listing) HasRegion(region string) bool {
	for _, r := range l.Regions {
		if r == region {
			return true
		}
	}
	return false
}
