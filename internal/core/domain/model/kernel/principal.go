package kernel

import (
	"starwings/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed indicates a zero-value Principal was used where
// a constructed one is required.
var ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError(
	"Principal must be created via NewPrincipal")

// Principal is the opaque, unforgeable identity of a caller. The service never
// interprets its content; it only compares principals for equality and uses
// them as map keys for role checks and ownership lookups. The token itself is
// supplied by the execution substrate (a wallet address, an mTLS subject, an
// API-gateway subject claim) and is assumed to be authenticated upstream.
//
// The zero value is invalid; construct via NewPrincipal.
type Principal struct {
	token string
}

// NewPrincipal wraps an authenticated identity token. The token must be
// non-empty; no other structure is imposed.
func NewPrincipal(token string) (Principal, error) {
	if token == "" {
		return Principal{}, errs.NewValueIsRequiredError("principal token")
	}
	return Principal{token: token}, nil
}

// Validate ensures the Principal was built through NewPrincipal.
func (p Principal) Validate() error {
	if p.token == "" {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// String returns the raw identity token.
func (p Principal) String() string {
	return p.token
}

// IsEqual compares two principals by token.
func (p Principal) IsEqual(other Principal) bool {
	return p.token == other.token
}

// IsZero reports whether the principal is the invalid zero value.
func (p Principal) IsZero() bool {
	return p.token == ""
}
