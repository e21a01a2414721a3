// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rdv provides a reusable two-party rendezvous point with bounded
// waiting and cooperative cancellation.
//
// Exactly two concurrent callers meet at a [Point]: each suspends until the
// other arrives, neither proceeds before both have, and optional interposed
// work runs while both are held at the meeting.
//
// # Architecture
//
//   - Core: [Point.Meet] and [Point.MeetFunc] bracket interposed work between
//     two synchronization fences over a single mutex-guarded cell.
//   - Admission: at most two callers are admitted concurrently. A third fails
//     fast with [ErrPeerCountExceeded] instead of queueing.
//   - Bounded waiting: a per-Point timeout races the whole meeting; the
//     Point's own timer surfaces as [ErrTimeout], the caller's own
//     [context.Context] surfaces untouched.
//   - Exchange: [NewExchange] couples a Point with lock-free bounded SPSC
//     queues via [code.hybscloud.com/lfq] so the two parties swap a value at
//     the meeting.
//
// # API Topologies
//
//   - Direct: [Point.Meet], [Point.MeetFunc], [Do] from plain goroutines.
//   - Operations: [Arrive], the rendezvous as an algebraic effect on
//     [code.hybscloud.com/kont].
//   - Cont-world: [ArriveThen], [Enclose], [Phases].
//   - Expr-world: Zero-allocation variants [ExprArriveThen], [ExprEnclose],
//     [ExprPhases]. Bridge via [code.hybscloud.com/kont.Reify] and
//     [code.hybscloud.com/kont.Reflect].
//
// # Integration
//
//   - Deterministic: [Run] and [RunExpr] match two computations' arrivals
//     pairwise on the calling goroutine, without goroutines, channels, or a
//     live Point.
//   - Blocking: [Exec] and [ExecExpr] run a computation against a live Point
//     with real suspension, so effect computations and plain goroutines can
//     meet each other.
//
// # Example
//
//	p := rdv.New(time.Second)
//	go func() { _ = p.Meet(context.Background()) }()
//	err := p.MeetFunc(context.Background(), func(ctx context.Context) error {
//		// runs while both callers are held at the meeting
//		return nil
//	})
package rdv
