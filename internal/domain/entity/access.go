package entity

// AccessScope is what a route demands of the caller.
type AccessScope int

const (
	// ScopeUser needs a verified access token only.
	ScopeUser AccessScope = iota
	// ScopeAdmin additionally needs the subject to be an admin.
	ScopeAdmin
)

// String returns a short label for logs.
func (s AccessScope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// AccessOutcome is the terminal state of one access decision.
type AccessOutcome int

const (
	Rejected AccessOutcome = iota
	Forbidden
	UserAuthorized
	AdminAuthorized
)

// String returns a short label for logs.
func (o AccessOutcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Forbidden:
		return "forbidden"
	case UserAuthorized:
		return "user_authorized"
	case AdminAuthorized:
		return "admin_authorized"
	default:
		return "unknown"
	}
}

// AccessDecision is produced once per request by the authorization gate.
// Subject is empty when Outcome is Rejected.
type AccessDecision struct {
	Outcome AccessOutcome
	Subject string
	Role    Role
}

// Allowed reports whether the request may proceed.
func (d AccessDecision) Allowed() bool {
	return d.Outcome == UserAuthorized || d.Outcome == AdminAuthorized
}
