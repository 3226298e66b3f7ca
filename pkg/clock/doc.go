// Package clock provides the time source abstraction for kvstore.
//
// The storage engine never reads the ambient wall clock. All expiry
// decisions go through an injected Clock, which keeps the engine
// deterministic and lets tests drive time explicitly:
//
//	clk := clock.NewMock(time.Unix(0, 0))
//	store := kvstore.New(nil, clk)
//	store.Set("k", "v", time.Second)
//	clk.Advance(2 * time.Second)
//	_, ok := store.Get("k") // ok == false
//
// @design DS-0201
package clock
