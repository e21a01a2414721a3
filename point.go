// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"context"
	"errors"
	"sync"
	"time"

	"code.hybscloud.com/iox"
)

var (
	// ErrPeerCountExceeded reports a third concurrent arrival at a Point.
	// A Point admits at most two callers at a time; excess arrivals fail
	// immediately without blocking and without disturbing the admitted pair.
	ErrPeerCountExceeded = errors.New("rdv: peer count exceeded")

	// ErrTimeout reports that the Point's configured timeout elapsed before
	// the meeting completed.
	ErrTimeout = errors.New("rdv: rendezvous timed out")
)

// waiter is a one-shot resumable handle for a parked caller.
// Ownership transfers out of the Point's cell exactly once, under the
// lock, to whichever party resumes it.
type waiter struct {
	done chan error
}

func newWaiter() *waiter {
	return &waiter{done: make(chan error, 1)}
}

// resume completes the waiter. Called at most once, by the party that
// took the waiter out of the cell. The buffered channel never blocks.
func (w *waiter) resume(err error) {
	w.done <- err
}

// Point is a reusable meeting point for exactly two concurrent callers.
// Each caller suspends at the meeting until the other arrives; neither
// proceeds before both have. A Point returns to its baseline state after
// every completed, cancelled, or timed-out meeting and may be reused for
// any number of sequential rounds.
type Point struct {
	timeout time.Duration
	serial  Serial

	// mu guards the cell below. Held only for read-modify-write,
	// never across a suspension.
	mu     sync.Mutex
	peers  uint32
	waiter *waiter
}

// New creates a rendezvous Point. timeout bounds each meeting, racing the
// whole fence→work→fence sequence; zero waits indefinitely.
func New(timeout time.Duration) *Point {
	return &Point{timeout: timeout, serial: nextSerial()}
}

// Serial returns the serial number assigned to this Point.
func (p *Point) Serial() Serial {
	return p.serial
}

// Idle reports whether the Point is at its baseline state:
// no admitted callers and no parked waiter.
func (p *Point) Idle() bool {
	p.mu.Lock()
	idle := p.peers == 0 && p.waiter == nil
	p.mu.Unlock()
	return idle
}

// Quiesce blocks until the Point returns to its baseline state, polling
// with adaptive backoff (iox.Backoff). Returns ctx.Err() if ctx is done
// first. Useful for handing a Point from one pair of parties to another.
func (p *Point) Quiesce(ctx context.Context) error {
	var bo iox.Backoff
	for !p.Idle() {
		if err := ctx.Err(); err != nil {
			return err
		}
		bo.Wait()
	}
	return nil
}
