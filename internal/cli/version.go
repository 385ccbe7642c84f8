package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.2.0"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show wallet-classifier version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", VERSION)
		},
	}
}
