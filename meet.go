// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"context"
	"errors"
)

// Meet arrives at the rendezvous and suspends until the peer arrives.
// Equivalent to MeetFunc with no interposed work: the caller still passes
// both fences, so a Meet pairs with a MeetFunc on the other side.
//
// Returns nil once both parties have passed the meeting,
// ErrPeerCountExceeded if two callers are already admitted, ErrTimeout if
// the Point's timeout elapsed first, or ctx.Err() if ctx was done first.
func (p *Point) Meet(ctx context.Context) error {
	return p.MeetFunc(ctx, nil)
}

// MeetFunc arrives at the rendezvous, runs work while both parties are
// held at the meeting, and releases both once work has completed. work
// receives a context bound by the Point's timeout and may be nil.
//
// The meeting is two fences around work: work begins only after the peer
// has reached the first fence, and the caller's meeting completes only
// after work has finished and the peer is released past the second fence.
// Both parties may carry work; the two closures run concurrently between
// the fences with no mutual ordering.
//
// An error from work propagates unchanged as the meeting's failure and
// the second fence is not passed; the peer, if already parked there, is
// released only by its own timeout or cancellation.
func (p *Point) MeetFunc(ctx context.Context, work func(context.Context) error) error {
	p.mu.Lock()
	if p.peers > 1 {
		p.mu.Unlock()
		return ErrPeerCountExceeded
	}
	p.peers++
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.peers--
		p.mu.Unlock()
	}()

	mctx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		mctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.fence(mctx); err != nil {
		return timeoutErr(ctx, err)
	}
	if work != nil {
		if err := work(mctx); err != nil {
			return err
		}
	}
	if err := p.fence(mctx); err != nil {
		return timeoutErr(ctx, err)
	}
	return nil
}

// Do arrives at the rendezvous on p, runs work between the fences, and
// returns its typed result. Package-level because methods cannot
// introduce type parameters.
func Do[R any](ctx context.Context, p *Point, work func(context.Context) (R, error)) (R, error) {
	var result R
	err := p.MeetFunc(ctx, func(wctx context.Context) error {
		r, err := work(wctx)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return result, nil
}

// fence is one synchronization pass: consume a parked peer or become the
// parked waiter. Both parties return from a fence at logically the same
// instant, whichever of them arrived first.
func (p *Point) fence(ctx context.Context) error {
	p.mu.Lock()
	if err := ctx.Err(); err != nil {
		// Cancelled before suspending: fail without registering.
		p.mu.Unlock()
		return err
	}
	if w := p.waiter; w != nil {
		p.waiter = nil
		w.resume(nil)
		p.mu.Unlock()
		return nil
	}
	w := newWaiter()
	p.waiter = w
	p.mu.Unlock()

	select {
	case err := <-w.done:
		return err
	case <-ctx.Done():
		p.releaseWaiter(ctx.Err())
		return <-w.done
	}
}

// releaseWaiter takes whatever waiter is currently stored, if any, and
// resumes it with err. The cell carries no identity: a caller that was
// already matched when its context fired may release a different party
// parked at a later fence, which then observes err in place of its own
// state. The canceller's own handle has been completed in that case, so
// its pending receive never blocks.
func (p *Point) releaseWaiter(err error) {
	p.mu.Lock()
	if w := p.waiter; w != nil {
		p.waiter = nil
		w.resume(err)
	}
	p.mu.Unlock()
}

// timeoutErr distinguishes the Point's own timer from the caller's
// context: a deadline observed at a fence while the caller's own context
// is still live is the Point's timeout.
func timeoutErr(outer context.Context, err error) error {
	if outer.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
