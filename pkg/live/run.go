package live

import (
	"context"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/inkwell/pkg/console"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/logging"
)

// Task is a unit of work run under a spinner. Its context carries the
// console lease, so it may print above the spinner with
// console.PrintContext.
type Task func(ctx context.Context) error

// RunWithSpinner runs task while a "dots" spinner with msg animates on c
func RunWithSpinner(ctx context.Context, c *console.Console, msg string, task Task, opts ...Option) error {
	sp, err := NewSpinner("dots", msg, c.Theme())
	if err != nil {
		return err
	}
	return RunSpinner(ctx, c, sp, task, opts...)
}

// RunSpinner runs task while sp animates on c. Whatever way the task ends,
// including a panic, the spinner line is cleared and the cursor shown again
// exactly once before RunSpinner returns. A panic is returned as an
// ErrInternal error.
func RunSpinner(ctx context.Context, c *console.Console, sp *Spinner, task Task, opts ...Option) error {
	logger := logging.GetLogger("live")
	defer logging.LogDuration(time.Now(), "spinner task")

	opts = append(opts, WithAutoRefresh(false), WithTransient(true))
	region := New(c, sp, opts...)
	leased, err := region.Start(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// normally already stopped below; this covers a panic in the group
		_ = region.Stop()
	}()

	g, gctx := errgroup.WithContext(leased)
	finished := make(chan struct{})

	g.Go(func() error {
		defer close(finished)
		return runSafe(gctx, task)
	})

	g.Go(func() error {
		ticker := time.NewTicker(sp.Interval())
		defer ticker.Stop()
		for {
			select {
			case <-finished:
				return nil
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				sp.Advance()
				if err := region.Refresh(); err != nil {
					logger.Debug().Err(err).Msg("spinner refresh failed")
				}
			}
		}
	})

	taskErr := g.Wait()
	stopErr := region.Stop()
	if taskErr != nil {
		return taskErr
	}
	return stopErr
}

func runSafe(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrInternal, "task panicked: %v", r).
				WithDetail("stack", string(debug.Stack()))
			logger := logging.GetLogger("live")
			logger.Error().Interface("panic", r).Msg("task panicked under spinner")
		}
	}()
	return task(ctx)
}
