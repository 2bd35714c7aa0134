// Version command for the datakit CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datakit/pkg/datakit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datakit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("datakit", datakit.Version)
	},
}
