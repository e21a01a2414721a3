// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"context"

	"code.hybscloud.com/kont"
)

// Arrive is the effect operation for one complete rendezvous.
// Perform(Arrive{}) suspends the computation at the meeting until the
// peer arrives.
//
// Under Run and RunExpr arrivals are matched pairwise by the driver.
// Under Exec and ExecExpr each arrival is one full Meet on a live Point.
type Arrive struct {
	kont.Phantom[struct{}]
}

// DispatchMeet handles Arrive against a live Point: one full Meet with
// real suspension. Blocking; fails with the Meet error on peer overflow,
// timeout, or cancellation.
func (Arrive) DispatchMeet(ctx context.Context, p *Point) (kont.Resumed, error) {
	if err := p.Meet(ctx); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}
