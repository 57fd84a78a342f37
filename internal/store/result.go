// ABOUTME: Result is the observable outcome of one background persist.
// ABOUTME: Callers may ignore it, wait on it, or select on Done.
package store

import "context"

// Result resolves once a queued write has finished.
type Result struct {
	done chan struct{}
	err  error
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

// resolved returns a Result that is already complete.
func resolved(err error) *Result {
	r := newResult()
	r.finish(err)
	return r
}

func (r *Result) finish(err error) {
	r.err = err
	close(r.done)
}

// Done is closed when the write has completed.
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Err blocks until the write completes and returns its error.
func (r *Result) Err() error {
	<-r.done
	return r.err
}

// Wait blocks until the write completes or ctx ends.
func (r *Result) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
