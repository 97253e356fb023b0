package win

import "runtime"

// threadRunner confines work to a single locked OS thread. Apartment-threaded
// COM objects must be called from the thread that initialized them, and
// goroutines otherwise migrate between threads freely.
type threadRunner struct {
	calls chan func()
}

// newThreadRunner starts the runner's thread and executes setup on it before
// returning. A setup error tears the runner down.
func newThreadRunner(setup func() error) (*threadRunner, error) {
	r := &threadRunner{calls: make(chan func())}
	ready := make(chan error)
	go func() {
		runtime.LockOSThread()
		if err := setup(); err != nil {
			ready <- err
			return
		}
		ready <- nil
		for fn := range r.calls {
			fn()
		}
	}()
	if err := <-ready; err != nil {
		return nil, err
	}
	return r, nil
}

// do runs fn on the runner's thread and returns its error. Calls are
// serialized; fn must not call do again.
func (r *threadRunner) do(fn func() error) error {
	done := make(chan error, 1)
	r.calls <- func() { done <- fn() }
	return <-done
}
