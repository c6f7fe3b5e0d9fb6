package entity

// Status is the lifecycle state of an entity. Each kind draws from its
// own enumerated subset; a record is never in a status outside its
// kind's set.
type Status string

const (
	// Listing statuses
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusFlagged  Status = "flagged"
	StatusDraft    Status = "draft"
	StatusRejected Status = "rejected"

	// Vendor statuses (active and inactive shared with listings)
	StatusSuspended Status = "suspended"
	StatusTrial     Status = "trial"

	// Order statuses
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusDisputed   Status = "disputed"

	// Review statuses (flagged shared with listings)
	StatusPublished       Status = "published"
	StatusPendingResponse Status = "pending_response"
	StatusHidden          Status = "hidden"
	StatusRemoved         Status = "removed"
)

// validTransitions maps kind -> current status -> legal next statuses.
// Statuses absent from a kind's map accept no transitions; that covers
// the terminal states (completed, cancelled, rejected, removed) as well
// as statuses that only the backend may move, which are not listed here.
var validTransitions = map[Kind]map[Status][]Status{
	KindListing: {
		StatusActive:   {StatusInactive, StatusFlagged},
		StatusInactive: {StatusActive, StatusFlagged},
		StatusDraft:    {StatusFlagged},
		StatusFlagged:  {StatusActive, StatusInactive},
	},
	KindVendor: {
		StatusActive:    {StatusSuspended},
		StatusTrial:     {StatusSuspended},
		StatusSuspended: {StatusActive},
	},
	KindOrder: {
		StatusUpcoming:   {StatusCancelled, StatusDisputed, StatusCompleted},
		StatusInProgress: {StatusCancelled, StatusDisputed, StatusCompleted},
		StatusDisputed:   {StatusCompleted},
	},
	KindReview: {
		StatusPublished:       {StatusFlagged, StatusHidden},
		StatusPendingResponse: {StatusPublished, StatusFlagged, StatusHidden},
		StatusHidden:          {StatusPublished, StatusFlagged},
		StatusFlagged:         {StatusPublished, StatusHidden, StatusRemoved},
	},
}

var statusSets = map[Kind][]Status{
	KindListing: {StatusActive, StatusInactive, StatusFlagged, StatusDraft, StatusRejected},
	KindVendor:  {StatusActive, StatusInactive, StatusSuspended, StatusTrial},
	KindOrder:   {StatusUpcoming, StatusInProgress, StatusCompleted, StatusCancelled, StatusDisputed},
	KindReview:  {StatusPublished, StatusPendingResponse, StatusFlagged, StatusHidden, StatusRemoved},
}

var terminalStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusCancelled: true,
	StatusRejected:  true,
	StatusRemoved:   true,
}

// Transitions returns the legal "to" statuses for a record of the given
// kind currently in the given status. Terminal statuses return nil.
func Transitions(kind Kind, from Status) []Status {
	targets := validTransitions[kind][from]
	if len(targets) == 0 {
		return nil
	}
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether moving from one status to another is
// legal for the given kind. Callers must check this before applying a
// transition.
func CanTransition(kind Kind, from, to Status) bool {
	for _, target := range validTransitions[kind][from] {
		if target == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions
// for any kind.
func IsTerminal(status Status) bool {
	return terminalStatuses[status]
}

// ValidStatus reports whether the status belongs to the kind's
// enumerated set.
func ValidStatus(kind Kind, status Status) bool {
	for _, s := range statusSets[kind] {
		if s == status {
			return true
		}
	}
	return false
}
