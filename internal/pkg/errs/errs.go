package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin wrapper so the rest of the codebase never imports cockroachdb/errors directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an identity of err so Is(err, markErr) holds
// while the original cause chain stays intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is recognizes Marked identities in addition to the standard unwrap chain.
// Sentinels attached with Mark must be matched through here, not errors.Is.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
