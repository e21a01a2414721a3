// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

import (
	"code.hybscloud.com/kont"
)

// ArriveThen meets the peer and then continues with next.
// Fuses Perform(Arrive{}) + Then.
func ArriveThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Arrive{}), next)
}

// Enclose brackets work between two meetings: the peer is met once before
// work begins and once after it completes, so both sides observe work
// strictly between the two matched meetings.
// Fuses Perform(Arrive{}) + Bind on both flanks.
func Enclose[A any](work kont.Eff[A]) kont.Eff[A] {
	return ArriveThen(kont.Bind(work, func(a A) kont.Eff[A] {
		return ArriveThen(kont.Pure(a))
	}))
}
