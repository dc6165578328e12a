package authcallback

import (
	"context"
	"strings"
	"sync"
	"time"
)

// First latches the first outcome offered to it. Later offers are ignored.
type First struct {
	once    sync.Once
	done    chan struct{}
	outcome Outcome
}

// NewFirst creates an empty latch
func NewFirst() *First {
	return &First{done: make(chan struct{})}
}

// Offer records o if no outcome has been recorded yet and reports whether
// it won
func (f *First) Offer(o Outcome) bool {
	won := false
	f.once.Do(func() {
		f.outcome = o
		won = true
		close(f.done)
	})
	return won
}

// Done is closed once an outcome has been recorded
func (f *First) Done() <-chan struct{} {
	return f.done
}

// Outcome returns the recorded outcome, if any
func (f *First) Outcome() (Outcome, bool) {
	select {
	case <-f.done:
		return f.outcome, true
	default:
		return Outcome{}, false
	}
}

// Await resolves a callback that may arrive either as the URL the app was
// launched with (initial) or as a later URL event. The initial URL and the
// first non-empty event race; whichever resolves first wins and the other
// is cancelled. When initial is empty, events are awaited for at most
// window (no limit when window <= 0). A timeout, a closed events channel or
// a cancelled ctx yields a MsgTimeout failure.
func Await(ctx context.Context, r *Resolver, initial string, events <-chan string, window time.Duration) Outcome {
	initial = strings.TrimSpace(initial)
	if initial == "" && window > 0 {
		var cancelWindow context.CancelFunc
		ctx, cancelWindow = context.WithTimeout(ctx, window)
		defer cancelWindow()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	first := NewFirst()
	var pending sync.WaitGroup

	if initial != "" {
		pending.Add(1)
		go func() {
			defer pending.Done()
			first.Offer(r.Resolve(ctx, initial))
		}()
	}

	if events != nil {
		pending.Add(1)
		go func() {
			defer pending.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-first.Done():
					return
				case u, ok := <-events:
					if !ok {
						return
					}
					if strings.TrimSpace(u) == "" {
						continue
					}
					first.Offer(r.Resolve(ctx, u))
					return
				}
			}
		}()
	}

	// Fail once every source has given up without an outcome
	allDone := make(chan struct{})
	go func() {
		pending.Wait()
		close(allDone)
	}()

	select {
	case <-first.Done():
	case <-allDone:
	case <-ctx.Done():
	}
	first.Offer(Failed(MsgTimeout))
	out, _ := first.Outcome()
	return out
}
