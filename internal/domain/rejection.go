package domain

// RejectionReason is the structured reason a booking request was declined.
// Rejections are expected, frequent outcomes: they travel as values in API
// responses, not as internal faults.
type RejectionReason string

const (
	// ReasonClosed - the unit is not open at the requested time
	ReasonClosed RejectionReason = "CLOSED"

	// ReasonBlocked - the requested interval falls in a blocked interval
	ReasonBlocked RejectionReason = "BLOCKED"

	// ReasonConflict - the requested interval overlaps an existing confirmed booking
	ReasonConflict RejectionReason = "CONFLICT"

	// ReasonInvalidPartySize - amount of people outside the allowed bounds
	ReasonInvalidPartySize RejectionReason = "INVALID_PARTY_SIZE"

	// ReasonInvalidDuration - duration outside the configured bounds
	ReasonInvalidDuration RejectionReason = "INVALID_DURATION"
)
