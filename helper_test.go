// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rdv_test

import (
	"context"
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rdv"
)

// meetAsync starts a Meet on p from a new goroutine and returns a
// channel carrying its result.
func meetAsync(p *rdv.Point) <-chan error {
	errc := make(chan error, 1)
	go func() {
		errc <- p.Meet(context.Background())
	}()
	return errc
}

// waitErr collects an asynchronous meet result, failing the test if
// none arrives within a generous bound (a stuck rendezvous).
func waitErr(tb testing.TB, errc <-chan error) error {
	tb.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		tb.Fatal("rendezvous did not complete")
		return nil
	}
}

// waitParked polls with adaptive backoff until p has a parked waiter,
// failing the test if none appears within a generous bound.
func waitParked(tb testing.TB, p *rdv.Point) {
	tb.Helper()
	deadline := time.Now().Add(5 * time.Second)
	var bo iox.Backoff
	for !p.Parked() {
		if time.Now().After(deadline) {
			tb.Fatal("no waiter parked")
		}
		bo.Wait()
	}
}
