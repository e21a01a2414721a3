// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv

// Parked reports whether a waiter is currently stored in p's cell.
// Test hook for observing the suspension state from outside.
func (p *Point) Parked() bool {
	p.mu.Lock()
	parked := p.waiter != nil
	p.mu.Unlock()
	return parked
}

// Point returns the port's underlying meeting point. Test hook.
func (pt *Port[T]) Point() *Point {
	return pt.point
}
