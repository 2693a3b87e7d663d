// errors.go — sentinel error for callers that would rather not crash on
// the programmer-error panics raised elsewhere in this package.
//
// Error policy:
//   - Only a sentinel variable is exposed; branch on it with errors.Is.
//   - The sentinel is never wrapped with a formatted string at the
//     definition site.
//   - The arithmetic and derivative-query API itself never returns an
//     error; Safe exists only for call sites that receive
//     Values from outside their control and want a recoverable check
//     instead of a crash.
package zhad

import "errors"

// ErrGraphMismatch is the panic value raised when two operands were
// built on different DependOn graphs. Safe returns an error satisfying
// errors.Is(err, ErrGraphMismatch); panic sites with extra call-site
// context wrap it with %w so that context survives recovery.
var ErrGraphMismatch = errors.New("zhad: operands belong to different graphs")

// Safe runs fn and converts a graph-mismatch panic into the error it
// carries, checked via errors.Is against ErrGraphMismatch. Any other
// panic is re-raised unchanged — Safe only narrows the one specific,
// documented programmer-error condition this package panics on.
func Safe(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrGraphMismatch) {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
