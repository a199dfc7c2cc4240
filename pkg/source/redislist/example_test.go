package redislist_test

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/nikitashade/seqflow/pkg/source/redislist"
)

// Example_scores demonstrates feeding a pipeline from a Redis list.
func Example_scores() {
	// Create a Redis client (in real usage, use your Redis connection)
	rdb := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use a test database
	})
	defer func() { _ = rdb.Close() }()

	// Test Redis connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Println("Redis not available, skipping example")
		return
	}

	// Seed a list of scores
	rdb.Del(ctx, "scores")
	rdb.RPush(ctx, "scores", "1", "-61", "14", "-22", "18", "-87", "6")

	src, err := redislist.New(rdb, "scores", redislist.Ints())
	if err != nil {
		log.Fatalf("Failed to create source: %v", err)
	}

	p, err := src.Lazy(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch: %v", err)
	}

	top := p.
		Filter(func(n int) bool { return n > 0 }).
		Take(3).
		ToSlice()

	fmt.Println("first three positive scores:", top)
}
