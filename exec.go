// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"context"

	"code.hybscloud.com/kont"
)

// meetDispatcher is the structural interface for rendezvous operations
// executed against a live Point. DispatchMeet blocks until the peer
// arrives or the meeting fails.
type meetDispatcher interface {
	DispatchMeet(ctx context.Context, p *Point) (kont.Resumed, error)
}

// meetHandler implements kont.Handler for rendezvous and error effects.
// Rendezvous ops block in Meet; error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type meetHandler[R any] struct {
	ctx    context.Context
	point  *Point
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler via structural interface assertion.
// Dispatch order: Meet → Error. A failed meeting or a thrown error
// short-circuits the computation with Left.
func (h meetHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if mop, ok := op.(meetDispatcher); ok {
		v, err := mop.DispatchMeet(h.ctx, h.point)
		if err != nil {
			return kont.Left[error, R](err), false
		}
		return v, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, R](h.errCtx.Err), false
		}
		return v, true
	}
	panic("rdv: unhandled effect in meetHandler")
}

// Exec runs a Cont-world computation against a live Point: each arrival
// performs one full Meet with real suspension, so an effect computation
// can meet a plain goroutine on the other side of p.
// Returns Either — Right on success, Left on a failed meeting or Throw.
func Exec[R any](ctx context.Context, p *Point, comp kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](comp, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := meetHandler[R]{ctx: ctx, point: p, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecExpr runs an Expr-world computation against a live Point: each
// arrival performs one full Meet with real suspension.
// Returns Either — Right on success, Left on a failed meeting or Throw.
func ExecExpr[R any](ctx context.Context, p *Point, comp kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(comp, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := meetHandler[R]{ctx: ctx, point: p, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
