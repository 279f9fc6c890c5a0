package model

// Activity is an append-only audit trail entry written alongside every
// mutating operation. The core never reads it back.
type Activity struct {
	UserID      int64
	Subject     string
	Event       string
	Description string
}
