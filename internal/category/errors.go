package category

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ErrorKind -linecomment -output=errorkind_string.go

// ErrorKind classifies a category failure.
type ErrorKind int

const (
	_ ErrorKind = iota // zero value is not a valid kind

	KindUnknownObject         // unknown object
	KindUnknownArrow          // unknown arrow
	KindDuplicateName         // duplicate name
	KindArrowNotInCategory    // arrow not in category
	KindNoIdentity            // no identity
	KindAmbiguousIdentity     // ambiguous identity
	KindDomainMismatch        // domain mismatch
	KindUndeclaredComposition // undeclared composition
)

// Sentinels for errors.Is. Every *Error unwraps to the sentinel of its kind.
var (
	ErrUnknownObject         = errors.New(KindUnknownObject.String())
	ErrUnknownArrow          = errors.New(KindUnknownArrow.String())
	ErrDuplicateName         = errors.New(KindDuplicateName.String())
	ErrArrowNotInCategory    = errors.New(KindArrowNotInCategory.String())
	ErrNoIdentity            = errors.New(KindNoIdentity.String())
	ErrAmbiguousIdentity     = errors.New(KindAmbiguousIdentity.String())
	ErrDomainMismatch        = errors.New(KindDomainMismatch.String())
	ErrUndeclaredComposition = errors.New(KindUndeclaredComposition.String())
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnknownObject:
		return ErrUnknownObject
	case KindUnknownArrow:
		return ErrUnknownArrow
	case KindDuplicateName:
		return ErrDuplicateName
	case KindArrowNotInCategory:
		return ErrArrowNotInCategory
	case KindNoIdentity:
		return ErrNoIdentity
	case KindAmbiguousIdentity:
		return ErrAmbiguousIdentity
	case KindDomainMismatch:
		return ErrDomainMismatch
	case KindUndeclaredComposition:
		return ErrUndeclaredComposition
	default:
		return nil
	}
}

// Error is a category failure naming the objects or arrows that caused it.
type Error struct {
	Kind ErrorKind
	// Names are the offending object or arrow names, in the order relevant
	// to the failure (e.g. f then g for a composition).
	Names []string
	// Detail is an optional human-readable qualifier.
	Detail string
}

func newError(kind ErrorKind, detail string, names ...string) *Error {
	return &Error{Kind: kind, Names: names, Detail: detail}
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.String())

	if len(e.Names) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(quoteAll(e.Names), ";"))
	}

	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}

	return b.String()
}

// Unwrap returns the sentinel for the error kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf reports the ErrorKind of err, or 0 when err is not a category error.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return 0
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}

	return out
}
