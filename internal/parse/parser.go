package parse

import (
	"errors"
	"fmt"

	"econgrads/internal/domain"
)

// ErrUnknownSchool means no parser is registered for a requested
// school. That is a code defect, not a data problem, and aborts the
// whole run.
var ErrUnknownSchool = errors.New("no parser registered for school")

// ParseError means a source document was recognizably broken (error
// interstitial, JS wall, truncated response). It is distinct from a
// legitimately empty result: zero placement rows on a healthy page is
// not an error.
type ParseError struct {
	School domain.School
	Source string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s (%s): %s", e.School, e.Source, e.Reason)
}

// Parser turns one school's raw documents into candidate records. All
// implementations are stateless; the output contract is identical even
// though every school's page structure differs.
type Parser interface {
	School() domain.School
	Parse(doc *Document) ([]domain.CandidateRecord, error)
}

// Lookup finds the parser for a school. Every tracked school must be
// registered; a miss fails fast.
func Lookup(s domain.School) (Parser, error) {
	p, ok := registry[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchool, s)
	}
	return p, nil
}

// Registered lists the schools that have a parser, in no particular
// order.
func Registered() []domain.School {
	out := make([]domain.School, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	return out
}
