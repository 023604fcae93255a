// Command sortbench runs the sorting strategies against generated or loaded
// datasets and verifies their output.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/shutdown"
	"github.com/spf13/cobra"
)

const appName = "sortbench"

func main() {
	ctx, handler := shutdown.SetupHandler(context.Background())

	err := newRootCmd().ExecuteContext(ctx)

	handler.Shutdown(ctx)

	if err != nil {
		logger.Get(ctx).Error("sortbench failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Benchmark and verify comb, heap and shell sort",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(), newVersionCmd())

	return root
}
