// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"context"
	"errors"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

var (
	// ErrClosed reports a swap on an exchange pair that has been closed,
	// either explicitly or by an earlier failed swap.
	ErrClosed = errors.New("rdv: exchange closed")

	// ErrPortBusy reports concurrent swaps on the same port. Each port
	// belongs to a single party; the peer holds the other port.
	ErrPortBusy = errors.New("rdv: port busy")
)

// swapCapacity is the bounded capacity for exchange transport queues.
// Each direction carries at most one in-flight value per swap round;
// 4 amortizes the producer-side cached-index refresh cost.
const swapCapacity = 4

// Port is one side of an exchange pair. A swap on a Port meets the peer
// at the shared Point and carries one value in each direction per round.
// Transport is backed by bounded lock-free SPSC queues from lfq, one per
// direction, so a Port admits a single swapping party at a time.
type Port[T any] struct {
	sendQ  *lfq.SPSC[T]
	recvQ  *lfq.SPSC[T]
	point  *Point
	closed *atomix.Uint32
	busy   atomix.Uint32

	// sendSlot pins the outgoing value for Enqueue's pointer argument,
	// avoiding a per-swap heap escape. Guarded by busy.
	sendSlot T
}

// Serial returns the serial number assigned to this port's exchange pair.
func (pt *Port[T]) Serial() Serial {
	return pt.point.Serial()
}

// Close closes the exchange pair for further swaps. Parties currently
// parked inside a swap are not interrupted; they exit by their own
// timeout or cancellation.
func (pt *Port[T]) Close() {
	pt.closed.Add(1)
}

// Swap meets the peer and exchanges values: the outgoing value is
// enqueued while both parties are held at the meeting, and the peer's
// value is collected once the meeting completes, so a successful swap
// always observes the value the peer carried into the same round.
//
// Any failed swap closes the pair: a half-performed exchange cannot be
// resumed. Errors: everything Meet can return, ErrClosed once the pair
// is closed, and ErrPortBusy on concurrent swaps on the same port.
func (pt *Port[T]) Swap(ctx context.Context, v T) (T, error) {
	var zero T
	if pt.busy.Add(1) != 1 {
		pt.busy.Add(^uint32(0))
		return zero, ErrPortBusy
	}
	defer pt.busy.Add(^uint32(0))
	if pt.closed.Load() != 0 {
		return zero, ErrClosed
	}
	err := pt.point.MeetFunc(ctx, func(context.Context) error {
		pt.sendSlot = v
		enqueueWait(pt.sendQ, &pt.sendSlot)
		return nil
	})
	if err != nil {
		pt.closed.Add(1)
		return zero, err
	}
	return dequeueWait(pt.recvQ), nil
}

// enqueueWait blocks until Enqueue succeeds, backing off on the bounded
// queue's backpressure with iox.Backoff.
func enqueueWait[T any](q *lfq.SPSC[T], slot *T) {
	var bo iox.Backoff
	for q.Enqueue(slot) != nil {
		bo.Wait()
	}
}

// dequeueWait blocks until Dequeue succeeds, backing off on the bounded
// queue's backpressure with iox.Backoff.
func dequeueWait[T any](q *lfq.SPSC[T]) T {
	var bo iox.Backoff
	for {
		v, err := q.Dequeue()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// exchangePair holds both ports, queues, and shared state in a single
// allocation. SPSC queues are embedded as values; only the ring buffers
// are separate heap objects.
type exchangePair[T any] struct {
	a      Port[T]
	b      Port[T]
	point  Point
	closed atomix.Uint32
	dataAB lfq.SPSC[T]
	dataBA lfq.SPSC[T]
}

// NewExchange creates a connected pair of exchange ports sharing one
// Point. Internal transport uses bounded lock-free SPSC queues, one per
// direction, and a shared atomic counter for close signaling. timeout
// bounds each swap's meeting as in New; zero waits indefinitely.
func NewExchange[T any](timeout time.Duration) (*Port[T], *Port[T]) {
	pair := &exchangePair[T]{}
	pair.point.timeout = timeout
	pair.point.serial = nextSerial()
	pair.dataAB.Init(swapCapacity)
	pair.dataBA.Init(swapCapacity)

	pair.a.sendQ = &pair.dataAB
	pair.a.recvQ = &pair.dataBA
	pair.a.point = &pair.point
	pair.a.closed = &pair.closed

	pair.b.sendQ = &pair.dataBA
	pair.b.recvQ = &pair.dataAB
	pair.b.point = &pair.point
	pair.b.closed = &pair.closed

	return &pair.a, &pair.b
}
