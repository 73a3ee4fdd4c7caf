// Package batch applies fixedvec operations to many independent vectors
// concurrently.
//
// A single fixedvec.Vector is not safe for concurrent use; batch only ever
// touches each destination vector from one goroutine. Callers must not pass
// the same destination twice in one call.
//
// # Usage
//
//	err := batch.AddInPlace(ctx, positions, velocities,
//	    batch.WithConcurrency(8),
//	    batch.WithLogger(fixedvec.NewTextLogger(nil, slog.LevelDebug)),
//	)
//
// Per-item failures (nil or moved-from vectors, integer division by zero)
// are reported as *ItemError; the first failure cancels the remaining work.
package batch
