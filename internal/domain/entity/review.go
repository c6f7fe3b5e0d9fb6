package entity

import (
	"time"
)

// VendorResponse is the vendor's public reply to a review.
type VendorResponse struct {
	Text        string    `json:"text"`
	RespondedAt time.Time `json:"responded_at"`
}

type Review struct {
	ID         string `json:"id"`
	ListingID  string `json:"listing_id"`
	VendorID   string `json:"vendor_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"` // 1-5
	Content    string `json:"content"`
	Status     Status `json:"status"`

	VendorResponse *VendorResponse `json:"vendor_response,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (r Review) EntityID() string     { return r.ID }
func (r Review) EntityKind() Kind     { return KindReview }
func (r Review) EntityStatus() Status { return r.Status }

func (r *Review) SetStatus(status Status) {
	r.Status = status
}
