package svgtiles

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	ErrMalformedNumber       = xerrors.New("malformed number")
	ErrMissingMoveto         = xerrors.New("path data must start with a moveto")
	ErrEmptyCommandArguments = xerrors.New("command has no arguments")
	ErrNegativeRadius        = xerrors.New("negative arc radius")
	ErrUnknownPathCommand    = xerrors.New("unknown path command")
	ErrSingularMatrix        = xerrors.New("singular matrix")
	ErrFlattenRecursionLimit = xerrors.New("curve subdivision exceeded depth limit")
	ErrUnsupportedArc        = xerrors.New("elliptical arcs are not flattened")
	ErrMissingReferenceRect  = xerrors.New("tile has no reference rect")
	ErrDuplicateTile         = xerrors.New("duplicate tile name")
	ErrUnknownBucket         = xerrors.New("unknown bucket")
	ErrInvalidConfig         = xerrors.New("invalid config")
	ErrIncompleteArguments   = xerrors.New("argument group is incomplete")
)

// fragmentLen caps how much of the offending input a ParseError quotes.
const fragmentLen = 24

// ParseError reports a grammar failure inside path or transform data.
type ParseError struct {
	Err    error
	Input  string
	Offset int
}

func newParseError(err error, input string, offset int) *ParseError {
	return &ParseError{Err: err, Input: input, Offset: offset}
}

// Fragment returns the raw input starting at the failure offset.
func (e *ParseError) Fragment() string {
	if e.Offset >= len(e.Input) {
		return ""
	}
	end := e.Offset + fragmentLen
	if end > len(e.Input) {
		end = len(e.Input)
	}
	return e.Input[e.Offset:end]
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d near %q", e.Err, e.Offset, e.Fragment())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
