package launcher

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Truncate(time.Millisecond).String()
}

func exitLabel(code int) string {
	if code == 0 {
		return "ok"
	}
	return fmt.Sprintf("exit %d", code)
}

// WriteSummary renders one row per spawned child. colored selects a style
// keyed to the overall result and should only be set for terminals.
func WriteSummary(w io.Writer, outcome *Outcome, colored bool) {
	if outcome == nil {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Run %s on %s", outcome.RunID, outcome.Platform))
	t.AppendHeader(table.Row{"#", "Step", "Command", "Result", "Duration"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Command", WidthMax: 100, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})

	row := 1
	if outcome.Build != nil {
		t.AppendRow(table.Row{row, outcome.Build.Invocation.Step, outcome.Build.Invocation.CommandLine(),
			exitLabel(outcome.Build.ExitCode), formatDuration(outcome.Build.Duration)})
		row++
	}
	for _, res := range outcome.Tests {
		t.AppendRow(table.Row{row, res.Invocation.Step, res.Invocation.CommandLine(),
			exitLabel(res.ExitCode), formatDuration(res.Duration)})
		row++
	}

	if outcome.Plan != nil {
		for i, inv := range outcome.Plan.Invocations()[outcome.Spawned():] {
			status := "not run"
			if i == 0 && outcome.Halt != "" {
				status = outcome.Halt
			}
			t.AppendRow(table.Row{row, inv.Step, inv.CommandLine(), status, ""})
			row++
		}
	}

	t.AppendFooter(table.Row{"", "", "Exit code", outcome.ExitCode, ""})

	if colored {
		if outcome.ExitCode != 0 {
			t.SetStyle(table.StyleColoredBlackOnRedWhite)
		} else {
			t.SetStyle(table.StyleColoredBlackOnGreenWhite)
		}
	} else {
		t.SetStyle(table.StyleLight)
	}

	t.Render()
}
