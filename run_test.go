// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/rdv"
)

func TestRunEnclose(t *testing.T) {
	a := rdv.Enclose(kont.Pure("a"))
	b := rdv.Enclose(kont.Pure("b"))

	resultA, resultB := rdv.Run[string, string](a, b)
	if resultA != "a" {
		t.Fatalf("a got %q, want %q", resultA, "a")
	}
	if resultB != "b" {
		t.Fatalf("b got %q, want %q", resultB, "b")
	}
}

func TestRunEncloseWork(t *testing.T) {
	var log []string
	mark := func(s string, v int) kont.Eff[int] {
		return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[int] {
			log = append(log, s)
			return kont.Pure(v)
		})
	}

	a := rdv.Enclose(mark("a:work", 1))
	b := rdv.Enclose(mark("b:work", 2))

	resultA, resultB := rdv.Run[int, int](a, b)
	if resultA != 1 || resultB != 2 {
		t.Fatalf("results got (%d, %d), want (1, 2)", resultA, resultB)
	}
	if len(log) != 2 || log[0] != "a:work" || log[1] != "b:work" {
		t.Fatalf("log got %v, want [a:work b:work]", log)
	}
}

func TestRunArriveThenChain(t *testing.T) {
	a := rdv.ArriveThen(rdv.ArriveThen(rdv.ArriveThen(kont.Pure(1))))
	b := rdv.ArriveThen(rdv.ArriveThen(rdv.ArriveThen(kont.Pure(2))))

	resultA, resultB := rdv.Run[int, int](a, b)
	if resultA != 1 || resultB != 2 {
		t.Fatalf("results got (%d, %d), want (1, 2)", resultA, resultB)
	}
}

func TestRunNoArrivals(t *testing.T) {
	resultA, resultB := rdv.Run[int, string](kont.Pure(7), kont.Pure("x"))
	if resultA != 7 {
		t.Fatalf("a got %d, want 7", resultA)
	}
	if resultB != "x" {
		t.Fatalf("b got %q, want %q", resultB, "x")
	}
}

func TestRunMixedWorlds(t *testing.T) {
	a := rdv.Enclose(kont.Pure(1))
	b := kont.Reflect(rdv.ExprEnclose(kont.ExprReturn(2)))

	resultA, resultB := rdv.Run[int, int](a, b)
	if resultA != 1 || resultB != 2 {
		t.Fatalf("results got (%d, %d), want (1, 2)", resultA, resultB)
	}
}

func TestRunUnmatchedPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unmatched arrival")
		}
		msg, ok := r.(string)
		if !ok || msg != "rdv: unmatched arrival in RunExpr" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	rdv.Run[int, int](rdv.ArriveThen(kont.Pure(1)), kont.Pure(2))
}

func TestRunUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unhandled effect")
		}
		msg, ok := r.(string)
		if !ok || msg != "rdv: unhandled effect in RunExpr" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	rdv.Run[int, int](kont.Perform(bogus{}), rdv.ArriveThen(kont.Pure(2)))
}

func TestRunExprEnclose(t *testing.T) {
	a := rdv.ExprEnclose(kont.ExprReturn(10))
	b := rdv.ExprEnclose(kont.ExprReturn(20))

	resultA, resultB := rdv.RunExpr[int, int](a, b)
	if resultA != 10 || resultB != 20 {
		t.Fatalf("results got (%d, %d), want (10, 20)", resultA, resultB)
	}
}

func TestRunExprArriveThen(t *testing.T) {
	a := rdv.ExprArriveThen(kont.ExprReturn("left"))
	b := rdv.ExprArriveThen(kont.ExprReturn("right"))

	resultA, resultB := rdv.RunExpr[string, string](a, b)
	if resultA != "left" {
		t.Fatalf("a got %q, want %q", resultA, "left")
	}
	if resultB != "right" {
		t.Fatalf("b got %q, want %q", resultB, "right")
	}
}

func TestRunExprEncloseNested(t *testing.T) {
	// Non-pure work inside the bracket: three meetings per side.
	a := rdv.ExprEnclose(rdv.ExprArriveThen(kont.ExprReturn(5)))
	b := rdv.ExprEnclose(rdv.ExprArriveThen(kont.ExprReturn(6)))

	resultA, resultB := rdv.RunExpr[int, int](a, b)
	if resultA != 5 || resultB != 6 {
		t.Fatalf("results got (%d, %d), want (5, 6)", resultA, resultB)
	}
}
