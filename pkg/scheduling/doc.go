/*
Package scheduling provides time-based execution primitives for pipelines.

Currently it contains one component:

  - refresher: Cron-scheduled re-evaluation of a pipeline with a cached
    snapshot of the latest result

Refresher:

The refresher turns a cheap-to-build lazy chain into a periodically
materialized view:

	r, err := refresher.New("top-scores", func() fluent.Pipeline[int] {
		return lazy.From(scores).
			Filter(func(n int) bool { return n > 0 }).
			Take(10)
	}, refresher.Config[int]{Spec: "@every 30s"})

	if err := r.Start(); err != nil {
		// handle error
	}
	defer r.Stop()

	if snap, ok := r.Latest(); ok {
		serve(snap.Values)
	}

Reads through Latest are lock-cheap and never trigger evaluation; the cron
schedule pays the evaluation cost in the background.
*/
package scheduling
