package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hfutils version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("hfutils " + hfutils.Version)
		},
	}
}
