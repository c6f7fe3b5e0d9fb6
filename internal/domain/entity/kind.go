package entity

// Kind identifies one of the console's entity collections.
type Kind string

const (
	KindListing Kind = "listing"
	KindVendor  Kind = "vendor"
	KindOrder   Kind = "order"
	KindReview  Kind = "review"
)

// Record is the common shape shared by every console entity. The id is
// stable and immutable; it is the sole key for selection sets and
// reconciliation.
type Record interface {
	EntityID() string
	EntityKind() Kind
	EntityStatus() Status
}

// StatusSettable is implemented by entity pointers so the mutator can
// apply a checked transition without knowing the concrete type.
type StatusSettable interface {
	SetStatus(Status)
}
