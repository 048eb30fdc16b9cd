package nss

import (
	"errors"
	"fmt"
)

// Sentinel errors for Store construction and queries.
var (
	// ErrEmptyInput indicates F had no flows at all.
	ErrEmptyInput = errors.New("nss: empty flow set")

	// ErrUnknownFlow indicates a query named a flow id the Store has never seen.
	ErrUnknownFlow = errors.New("nss: unknown flow")

	// ErrUnknownLink indicates a query named a link id the Store has never seen.
	ErrUnknownLink = errors.New("nss: unknown link")

	// ErrNegativeCapacity indicates a capacity update drove a link below -Epsilon.
	// It is advisory: callers may log it (via Options.Warnf) and continue, since
	// the subsequent cleanup pass purges links at or below the tolerance anyway.
	ErrNegativeCapacity = errors.New("nss: capacity went negative")
)

// LinkCapacityError reports a malformed or inconsistent capacity for a named link.
type LinkCapacityError struct {
	Link     string
	Capacity float64
}

func (e *LinkCapacityError) Error() string {
	return fmt.Sprintf("nss: link %q has non-positive capacity %g while carrying flows", e.Link, e.Capacity)
}

// RouteError reports a flow whose route names a link absent from C.
type RouteError struct {
	Flow string
	Link string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("nss: flow %q routes through unknown link %q", e.Flow, e.Link)
}
