package main

import (
	"time"

	"github.com/spf13/cobra"

	"advlog/progress"
)

func newProgressCommand() *cobra.Command {
	var transient bool
	var tasks int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show the live progress display",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker := progress.NewTracker(progress.Options{
				Output:    cmd.OutOrStdout(),
				Transient: transient,
			})
			return tracker.Run(func(tr *progress.Tracker) error {
				total := progress.NewBar("warmup", 20, cmd.OutOrStdout())
				for i := 0; i < 20; i++ {
					if err := total.Add(1); err != nil {
						return err
					}
					time.Sleep(10 * time.Millisecond)
				}
				if err := total.Finish(); err != nil {
					return err
				}

				summary := tr.AddTask("overall", int64(tasks)*10, progress.Persistent())
				for i := 0; i < tasks; i++ {
					id := tr.AddTask("task", 10)
					for step := 0; step < 10; step++ {
						tr.Update(id, 1)
						tr.Update(summary, 1)
						time.Sleep(25 * time.Millisecond)
					}
					tr.Log("task %d of %d finished", i+1, tasks)
					tr.RemoveTask(id)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&transient, "transient", false, "Clear the display when done")
	cmd.Flags().IntVar(&tasks, "tasks", 3, "Number of demo tasks to run")
	return cmd
}
