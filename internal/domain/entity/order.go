package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	VendorID      string        `json:"vendor_id"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Date          time.Time     `json:"date"`
	Total         float64       `json:"total"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (o Order) EntityID() string     { return o.ID }
func (o Order) EntityKind() Kind     { return KindOrder }
func (o Order) EntityStatus() Status { return o.Status }

func (o *Order) SetStatus(status Status) {
	o.Status = status
}
