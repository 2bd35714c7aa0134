// Validate command: check a stored table file against a schema file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datakit/pkg/table"
)

var (
	flagSchemaFile string
	flagStrict     bool
	flagParallel   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <table.json>",
	Short: "Validate a table file",
	Long: `Validate reads a table in its wire form and checks every column against
its contract. With --schema the table is checked against an external
schema file instead; --strict additionally rejects table columns the
schema does not cover. A validation report is printed as JSON and the
command exits non-zero when the table is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTableFile(args[0])
		if err != nil {
			return err
		}

		var verr error
		switch {
		case flagSchemaFile != "":
			schema, err := readSchemaFile(flagSchemaFile)
			if err != nil {
				return err
			}
			verr = t.ValidateTableAgainstSchema(schema, flagStrict)
		case flagParallel:
			verr = t.ValidateTablePar()
		default:
			verr = t.ValidateTable()
		}

		if verr == nil {
			fmt.Println(`"valid"`)
			return nil
		}

		terr, ok := verr.(*table.TableError)
		if !ok {
			return verr
		}
		report, err := json.Marshal(terr)
		if err != nil {
			return errors.Wrap(err, "encode report")
		}
		fmt.Println(string(report))
		// The report went to stdout already; suppress cobra's error print.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return errors.New("table is invalid")
	},
}

func init() {
	validateCmd.Flags().StringVar(&flagSchemaFile, "schema", "", "schema file to validate against")
	validateCmd.Flags().BoolVar(&flagStrict, "strict", false, "reject table columns the schema does not cover")
	validateCmd.Flags().BoolVar(&flagParallel, "parallel", false, "validate columns concurrently")
}

func readTableFile(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read table file")
	}
	t := &table.Table{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, errors.Wrap(err, "decode table")
	}
	return t, nil
}

func readSchemaFile(path string) (table.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return table.Schema{}, errors.Wrap(err, "read schema file")
	}
	var schema table.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return table.Schema{}, errors.Wrap(err, "decode schema")
	}
	return schema, nil
}
