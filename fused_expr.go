// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operation and frame to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprArrive      kont.Erased = Arrive{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprArriveThen meets the peer and then continues with next.
// Fuses ExprPerform(Arrive{}) + ExprThen.
func ExprArriveThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprArrive
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprEnclose brackets work between two meetings (Expr-world).
// Fuses the trailing meeting inline to avoid the type-erasing wrapper closure.
func ExprEnclose[A any](work kont.Expr[A]) kont.Expr[A] {
	if _, ok := work.Frame.(kont.ReturnFrame); ok {
		return ExprArriveThen(ExprArriveThen(kont.ExprReturn(work.Value)))
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		result := ExprArriveThen(kont.ExprReturn(a))
		return kont.Expr[kont.Erased]{Value: result.Value, Frame: result.Frame}
	}
	bf.Next = kont.ReturnFrame{}
	return ExprArriveThen(kont.Expr[A]{
		Value: work.Value,
		Frame: kont.ChainFrames(work.Frame, bf),
	})
}
