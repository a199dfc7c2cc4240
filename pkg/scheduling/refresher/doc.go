/*
Package refresher keeps a materialized view of a pipeline fresh on a cron
schedule.

A Refresher owns a build function returning a fluent.Pipeline, evaluates it
on the configured schedule, and caches the resulting snapshot behind a
read-write lock so readers never pay the evaluation cost:

	r, err := refresher.New("top-scores",
		func() fluent.Pipeline[int] {
			return lazy.From(scores).
				Filter(func(n int) bool { return n > 0 }).
				TakeLast(10)
		},
		refresher.Config[int]{
			Spec:           "@every 1m",
			RefreshOnStart: true,
		})
	if err != nil {
		return err
	}
	if err := r.Start(); err != nil {
		return err
	}
	defer r.Stop()

	if snap, ok := r.Latest(); ok {
		fmt.Println(snap.Values)
	}

Refresh can also be called manually at any time. Evaluation panics (for
example a programming error in the build function) are recovered, logged
through the configured zap logger and surfaced as errors; the previous
snapshot remains available.
*/
package refresher
