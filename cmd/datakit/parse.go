// Parse command: turn a literal into a value and print its wire form.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datakit/pkg/parse"
)

var parseCmd = &cobra.Command{
	Use:   "parse <literal>",
	Short: "Parse a literal into a typed value",
	Long: `Parse interprets the argument as an ISO-8601 date/time or a JSON-shaped
literal and prints the resulting value in its wire form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := parse.New()
		v, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		out, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encode value")
		}
		fmt.Println(string(out))
		return nil
	},
}
