package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"advlog/format"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Render a sample record through every formatter style",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := sampleRecord()

			styles := []struct {
				name string
				note string
			}{
				{format.StyleStandard, "aligned fields, locations shown"},
				{format.StyleTable, "aligned fields including logger name"},
				{format.StyleCompact, "single-letter level, short timestamp"},
				{format.StyleColumn, "explicit column list"},
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Style", "Layout", "Output"})
			for _, style := range styles {
				formatter := format.New(style.name)
				tw.AppendRow(table.Row{style.name, style.note, formatter.Format(rec)})
			}
			tw.AppendRow(table.Row{"json", "one object per line", format.NewJSON(true).Format(rec)})
			tw.Render()

			return nil
		},
	}
}

func sampleRecord() format.Record {
	return format.Record{
		Time:    time.Date(2026, time.March, 14, 9, 26, 53, 0, time.Local),
		Level:   format.LevelInfo,
		Logger:  "pipeline",
		File:    "encode.go",
		Line:    42,
		Message: "stage finished",
		Extras: []format.Extra{
			{Key: "duration", Value: "3.2s"},
			{Key: "items", Value: 17},
		},
	}
}
