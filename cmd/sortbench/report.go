package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/amp-labs/amp-containers/bench"
	"github.com/amp-labs/amp-containers/cli"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// renderReport formats a report as a banner followed by one row per run.
func renderReport(ctx context.Context, report *bench.Report) string {
	width := cli.TerminalWidth(ctx)

	var sb strings.Builder

	title := fmt.Sprintf("sortbench %s\n%s / %s / %d elements", report.RunID, report.Kind, report.Order, report.Size)
	sb.WriteString(cli.Banner(ctx, title, width, cli.AlignCenter))

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0) //nolint:mnd

	_, _ = fmt.Fprintln(tw, "STRATEGY\tREPEAT\tDURATION\tSORTED\tPERMUTATION\tIDEMPOTENT\tFINGERPRINT\tERROR")

	for _, res := range report.Results {
		errText := ""
		if res.Err != nil {
			errText = res.Err.Error()
		}

		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Strategy, res.Repeat, res.Duration,
			yesNo(res.Sorted), yesNo(res.Permutation), yesNo(res.Idempotent),
			res.Fingerprint, errText)
	}

	_ = tw.Flush()

	sb.WriteString(cli.Divider(width))
	fmt.Fprintf(&sb, "passed: %s  agree: %s\n", yesNo(report.Passed()), yesNo(report.Agree))

	return sb.String()
}
