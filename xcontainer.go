// Package xcontainer provides generic containers and a set of
// algorithms that work with any of them. The containers themselves
// live in subpackages, such as [deedles.dev/xcontainer/list], and the
// algorithms in [deedles.dev/xcontainer/alg].
//
// This package holds the errors shared by all of them.
package xcontainer

import (
	"errors"
	"fmt"
)

var (
	// ErrContract is wrapped by every error that reports a misuse of a
	// container, such as removing from an empty list.
	ErrContract = errors.New("contract violation")

	ErrEmpty   = fmt.Errorf("%w: container is empty", ErrContract)
	ErrEnd     = fmt.Errorf("%w: end position", ErrContract)
	ErrInvalid = fmt.Errorf("%w: invalid position", ErrContract)
	ErrForeign = fmt.Errorf("%w: position belongs to another container", ErrContract)
	ErrRange   = fmt.Errorf("%w: malformed range", ErrContract)

	// ErrAllocation is returned by inserts when a new node could not be
	// allocated. The container is left unmodified.
	ErrAllocation = errors.New("node allocation failed")
)

// ContractError is the concrete type of contract violations returned
// or panicked with by containers. Err is one of the Err* values of
// this package.
type ContractError struct {
	Op  string
	Err error
}

func (err *ContractError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err *ContractError) Unwrap() error {
	return err.Err
}
