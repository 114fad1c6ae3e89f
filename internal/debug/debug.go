// Package debug controls how container contract violations are
// reported. Building with the xcontainer_debug tag turns violations
// into panics and enables extra checks that are too slow to run
// unconditionally.
package debug

import (
	"log/slog"

	"deedles.dev/xcontainer"
)

// Violation returns a [xcontainer.ContractError] describing a misuse
// during op. If Enabled is true, it logs the error and panics with it
// instead.
func Violation(op string, err error) error {
	cerr := &xcontainer.ContractError{Op: op, Err: err}
	if Enabled {
		slog.Error("contract violation", "op", op, "err", err)
		panic(cerr)
	}
	return cerr
}

// Must panics with a [xcontainer.ContractError]. It is for operations
// that have no way to return an error.
func Must(op string, err error) {
	panic(Violation(op, err))
}

// Catch calls f and returns its error. If Enabled is true, a panic
// with a [xcontainer.ContractError] raised by f is recovered and
// returned instead, so violations can be handled the same way no
// matter how the package was built. Other panics are not recovered.
func Catch(f func() error) (err error) {
	if Enabled {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			cerr, ok := r.(*xcontainer.ContractError)
			if !ok {
				panic(r)
			}
			err = cerr
		}()
	}
	return f()
}
