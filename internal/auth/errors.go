package auth

import "net/http"

// Error is an authorization failure carrying the HTTP status it maps to
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrMissingCredential: no Authorization header was presented
	ErrMissingCredential = &Error{http.StatusUnauthorized, "Authorization header is missing"}

	// ErrMalformedCredential: the header is not in "<scheme> <token>" shape
	ErrMalformedCredential = &Error{http.StatusUnauthorized, "Invalid Authorization header format. Expected: 'Bearer <token>'"}

	// ErrProfileNotFound: the token is valid but no role record exists
	ErrProfileNotFound = &Error{http.StatusNotFound, "User profile not found"}

	// ErrAdminHandleUnavailable: token validation needs the privileged store
	// connection and it was never constructed
	ErrAdminHandleUnavailable = &Error{http.StatusInternalServerError, "Admin client for authentication is not initialized"}

	// ErrDisabledAuthUnavailable: the disabled-auth fallback cannot run
	// without a working privileged connection either
	ErrDisabledAuthUnavailable = &Error{http.StatusInternalServerError, "Auth is disabled but admin client failed to initialize"}
)

// invalidCredential wraps the identity provider's rejection message
func invalidCredential(err error) *Error {
	return &Error{http.StatusUnauthorized, "Authentication failed: " + err.Error()}
}
