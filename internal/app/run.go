package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/rigsplit/internal/ctxlog"
	"github.com/vk/rigsplit/internal/plan"
	"github.com/vk/rigsplit/internal/rig"
	"github.com/vk/rigsplit/internal/solver"
)

// Run executes the main application logic: load the rig, partition it into
// solver jobs, and print the plan in dependency order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started")

	root, err := rig.Load(ctx, a.config.RigPath)
	if err != nil {
		return fmt.Errorf("failed to load rig: %w", err)
	}

	list, err := plan.NewJobList(ctx, root, solver.NewFactory())
	if errors.Is(err, plan.ErrNoEffectors) {
		// A rig without effectors is a valid empty plan, not a failure.
		fmt.Fprintln(a.outW, "no IK jobs: rig has no effectors")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to build job list: %w", err)
	}
	defer list.Release()

	a.printPlan(list)
	a.logger.Debug("App.Run finished")
	return nil
}

// printPlan writes the ordered solve plan to the application output.
func (a *App) printPlan(list *plan.JobList) {
	fmt.Fprintf(a.outW, "%d IK solver job(s), in dependency order:\n", list.Len())
	for i, j := range list.Jobs() {
		job, ok := j.(*solver.Job)
		if !ok {
			fmt.Fprintf(a.outW, "%3d. %v\n", i+1, j)
			continue
		}
		fmt.Fprintf(a.outW, "%3d. %s\n", i+1, job.Describe())
	}
}
