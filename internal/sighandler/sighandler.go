// Package sighandler relays signals received by this process to another
// process. It exists for platforms where we cannot hand our process image
// over to the launched application and have to babysit it as a child
// instead.
package sighandler

import (
	"os"
	"os/signal"
)

// Signaler is the subset of os.Process we need, split out so tests do not
// have to spawn real processes.
type Signaler interface {
	Signal(sig os.Signal) error
}

// Forwarder forwards the registered signals to a target process for as long
// as it is open.
type Forwarder struct {
	target Signaler
	sigCh  chan os.Signal
	done   chan struct{}
}

// NewForwarder constructs a Forwarder and starts relaying the given signals
func NewForwarder(target Signaler, signals ...os.Signal) *Forwarder {
	f := &Forwarder{
		target: target,
		sigCh:  make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
	signal.Notify(f.sigCh, signals...)
	go f.relay()
	return f
}

func (f *Forwarder) relay() {
	for {
		select {
		case sig := <-f.sigCh:
			// The target may have exited already; nothing useful to do then
			_ = f.target.Signal(sig)
		case <-f.done:
			return
		}
	}
}

// Close stops relaying. Safe to call once only.
func (f *Forwarder) Close() error {
	signal.Stop(f.sigCh)
	close(f.done)
	return nil
}
