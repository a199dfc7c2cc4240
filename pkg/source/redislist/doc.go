/*
Package redislist exposes Redis lists as sequences for fluent pipelines.

A Source pairs a go-redis client with a list key and a Decoder and fetches
the list (LRANGE) into a decoded []T, preserving Redis insertion order:

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	src, err := redislist.New(client, "recent:scores", redislist.Ints())
	if err != nil {
		return err
	}

	p, err := src.Lazy(ctx)
	if err != nil {
		return err
	}
	top := p.Filter(func(n int) bool { return n > 0 }).TakeLast(10).ToSlice()

Decoders are provided for strings, integers, floats and JSON payloads; a
decode failure aborts the fetch with an error wrapping errors.ErrDecode so
corrupt entries are never silently dropped. The fetch itself is a single
eager round trip; the pipeline built on the result follows whichever
evaluation strategy the caller picked.
*/
package redislist
