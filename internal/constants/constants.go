package constants

import "time"

// Session
const (
	SessionCookieName = "todoweb_session"
	ContextKeyUserID  = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
)

// DeadlineTolerance is the window within which a resubmitted deadline is
// treated as unchanged. Browsers drop seconds from datetime-local inputs, so
// a round-tripped deadline rarely matches the stored value exactly.
const DeadlineTolerance = 60 * time.Second
