package reconciler

import (
	"context"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Task is one source query to run during a fan-out.
type Task[T any] struct {
	Source sources.ID
	Run    func(ctx context.Context) sources.Outcome[T]
}

// Gather runs every task concurrently and returns their outcomes in task
// order. Each task writes only its own slot, so no task can observe or
// disturb another. A panicking task becomes a failed outcome.
func Gather[T any](ctx context.Context, tasks []Task[T]) []sources.Outcome[T] {
	outcomes := make([]sources.Outcome[T], len(tasks))

	var wg conc.WaitGroup
	for i, task := range tasks {
		wg.Go(func() {
			var pc panics.Catcher
			pc.Try(func() {
				outcomes[i] = task.Run(ctx)
			})
			if r := pc.Recovered(); r != nil {
				outcomes[i] = sources.Failed[T](task.Source, sources.Primary, r.AsError())
			}
			if outcomes[i].Source == "" {
				outcomes[i].Source = task.Source
			}
		})
	}
	wg.Wait()

	logger := logging.Ctx(ctx)
	for _, o := range outcomes {
		if o.Failed() {
			logger.Warn().
				Str("source", o.Source.String()).
				Str("channel", string(o.Channel)).
				Err(o.Err).
				Msg("source failed")
		}
	}

	return outcomes
}
