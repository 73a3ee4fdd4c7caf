package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fixedvec"
)

// AddInPlace computes dst[i].AddInPlace(src[i]) for every i.
// len(dst) must equal len(src), otherwise *fixedvec.ErrSizeMismatch is returned.
func AddInPlace[T fixedvec.Number, D fixedvec.Dim](ctx context.Context, dst, src []*fixedvec.Vector[T, D], opts ...Option) error {
	if len(dst) != len(src) {
		return &fixedvec.ErrSizeMismatch{Expected: len(dst), Actual: len(src)}
	}
	return run(ctx, "add", len(dst), applyOptions(opts), func(i int) error {
		if err := usable(dst[i], src[i]); err != nil {
			return err
		}
		dst[i].AddInPlace(src[i])
		return nil
	})
}

// SubInPlace computes dst[i].SubInPlace(src[i]) for every i.
// len(dst) must equal len(src), otherwise *fixedvec.ErrSizeMismatch is returned.
func SubInPlace[T fixedvec.Number, D fixedvec.Dim](ctx context.Context, dst, src []*fixedvec.Vector[T, D], opts ...Option) error {
	if len(dst) != len(src) {
		return &fixedvec.ErrSizeMismatch{Expected: len(dst), Actual: len(src)}
	}
	return run(ctx, "sub", len(dst), applyOptions(opts), func(i int) error {
		if err := usable(dst[i], src[i]); err != nil {
			return err
		}
		dst[i].SubInPlace(src[i])
		return nil
	})
}

// ScaleInPlace multiplies every vector in vs by s.
func ScaleInPlace[T fixedvec.Number, D fixedvec.Dim](ctx context.Context, vs []*fixedvec.Vector[T, D], s T, opts ...Option) error {
	return run(ctx, "scale", len(vs), applyOptions(opts), func(i int) error {
		if err := usable(vs[i]); err != nil {
			return err
		}
		vs[i].ScaleInPlace(s)
		return nil
	})
}

// DivInPlace divides every vector in vs by s.
// An integer division by zero is reported as an *ItemError wrapping ErrPanic.
func DivInPlace[T fixedvec.Number, D fixedvec.Dim](ctx context.Context, vs []*fixedvec.Vector[T, D], s T, opts ...Option) error {
	return run(ctx, "div", len(vs), applyOptions(opts), func(i int) error {
		if err := usable(vs[i]); err != nil {
			return err
		}
		vs[i].DivInPlace(s)
		return nil
	})
}

// Fill sets every element of every vector in vs to value.
func Fill[T fixedvec.Number, D fixedvec.Dim](ctx context.Context, vs []*fixedvec.Vector[T, D], value T, opts ...Option) error {
	return run(ctx, "fill", len(vs), applyOptions(opts), func(i int) error {
		if err := usable(vs[i]); err != nil {
			return err
		}
		vs[i].Fill(value)
		return nil
	})
}

// usable rejects nil and moved-from operands before they reach a kernel.
func usable[T fixedvec.Number, D fixedvec.Dim](vs ...*fixedvec.Vector[T, D]) error {
	for _, v := range vs {
		if v == nil {
			return ErrNilVector
		}
		if v.IsMoved() {
			return fixedvec.ErrMovedFrom
		}
	}
	return nil
}

// run calls fn for every index in [0, n) with at most o.concurrency
// goroutines in flight. The first failure cancels the items not yet started.
func run(ctx context.Context, op string, n int, o options, fn func(i int) error) error {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	stopped := false
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return protect(i, fn)
		})
	}

	err := g.Wait()
	if err == nil && stopped {
		// Wait only reports goroutine errors; a parent cancellation that
		// stopped the loop early still has to surface.
		err = ctx.Err()
	}

	o.logger.LogBatch(ctx, op, n, time.Since(start), err)
	return err
}

// protect runs fn(i), converting both errors and panics into *ItemError.
func protect(i int, fn func(int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ItemError{Index: i, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	if err := fn(i); err != nil {
		return &ItemError{Index: i, Err: err}
	}
	return nil
}
