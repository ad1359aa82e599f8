package domain

// AccountType distinguishes ordinary diners from restaurant accounts.
type AccountType string

const (
	AccountUser       AccountType = "user"
	AccountRestaurant AccountType = "restaurant"
)

// SessionState is the lifecycle of the client session. It starts at
// StateLoading and moves exactly once to one of the other two; the next
// transition only happens on login or logout.
type SessionState int

const (
	StateLoading SessionState = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Session is the client-held record of the current authenticated user and
// bearer token. It is the only durable state this client owns.
type Session struct {
	Token       string      `json:"token"`
	User        *User       `json:"user,omitempty"`
	AccountType AccountType `json:"account_type"`
	SavedUTC    int64       `json:"saved_utc"`
}

// Authenticated reports whether the session carries a usable token.
func (s Session) Authenticated() bool { return s.Token != "" }

// Credentials is the login input. Tags drive validator/v10.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult is the payload of POST /api/auth/login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
