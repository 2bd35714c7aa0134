// Convert command: parse a literal and coerce it to a target type.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datakit/pkg/coerce"
	"github.com/mesh-intelligence/datakit/pkg/parse"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

var convertCmd = &cobra.Command{
	Use:   "convert <literal> <type>",
	Short: "Parse a literal and convert it to the given type",
	Long: `Convert parses the first argument the way the parse command does, then
coerces the result to the named type (number, text, boolean, dateTime)
and prints the converted value in its wire form.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, ok := value.ParseType(args[1])
		if !ok {
			return errors.Errorf("unknown type %q", args[1])
		}

		parser := parse.New()
		v, err := parser.Parse(args[0])
		if err != nil {
			return err
		}

		converted, err := coerce.New().Convert(v, target)
		if err != nil {
			return err
		}
		out, err := json.Marshal(converted)
		if err != nil {
			return errors.Wrap(err, "encode value")
		}
		fmt.Println(string(out))
		return nil
	},
}
