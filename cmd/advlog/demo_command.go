package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"advlog"
	"advlog/format"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a multi-logger session against the console and per-logger files",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ctx.sessionOptions()
			if err != nil {
				return err
			}
			level, err := format.ParseLevelStrict(opts.Level)
			if err != nil {
				return err
			}

			manager, err := advlog.NewManager(advlog.Options{
				SharedConsole: true,
				ConsoleWriter: cmd.OutOrStdout(),
				UseColor:      color,
				Level:         level,
				Style:         opts.Style,
				ShowLocation:  opts.ShowLocation,
			})
			if err != nil {
				return err
			}
			defer manager.Close()

			pipeline, err := manager.Register("pipeline", advlog.Registration{
				FileStrategy: advlog.StrategySeparate,
				FilePath:     filepath.Join(opts.OutputDir, "pipeline.log"),
			})
			if err != nil {
				return err
			}
			worker, err := manager.Register("worker", advlog.Registration{
				FileStrategy:  advlog.StrategySeparate,
				FilePath:      filepath.Join(opts.OutputDir, "worker.log"),
				IncludeExtras: true,
			})
			if err != nil {
				return err
			}

			pipeline.Info("session started")
			worker.Debug("picking up first item")
			worker.Info("item finished", "duration", "1.4s")
			worker.Warning("retrying flaky step", "attempt", 2)
			pipeline.Error("downstream unavailable")
			pipeline.Info("session complete")

			fmt.Fprintln(cmd.OutOrStdout())
			for name, handle := range manager.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, handle.FilePath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "Colorize console output by level")
	return cmd
}
