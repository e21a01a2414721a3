// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"code.hybscloud.com/kont"
)

// Run runs two Cont-world computations to completion on the calling
// goroutine, matching their arrivals pairwise: both sides resume from
// each matched pair of arrivals at the same step. The driver itself is
// the meeting point; no Point, goroutines, or channels are involved,
// which makes rendezvous choreographies deterministic and schedulable.
//
// Panics if a computation suspends on a non-rendezvous operation, or if
// one side still has a pending arrival after the other has completed.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(kont.Reify(a), kont.Reify(b))
}

// RunExpr runs two Expr-world computations to completion on the calling
// goroutine, matching their arrivals pairwise. See Run.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := kont.StepExpr(a)
	resultB, suspB := kont.StepExpr(b)
	for suspA != nil || suspB != nil {
		if suspA != nil {
			if _, ok := suspA.Op().(Arrive); !ok {
				panic("rdv: unhandled effect in RunExpr")
			}
		}
		if suspB != nil {
			if _, ok := suspB.Op().(Arrive); !ok {
				panic("rdv: unhandled effect in RunExpr")
			}
		}
		if suspA == nil || suspB == nil {
			panic("rdv: unmatched arrival in RunExpr")
		}
		resultA, suspA = suspA.Resume(struct{}{})
		resultB, suspB = suspB.Resume(struct{}{})
	}
	return resultA, resultB
}
