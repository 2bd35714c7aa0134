// Dataset commands: save, get, list and delete named tables in the
// configured store backend.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datakit/internal/store"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage stored datasets",
}

var datasetSaveCmd = &cobra.Command{
	Use:   "save <name> <table.json>",
	Short: "Store a table file as a named dataset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTableFile(args[1])
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		d, err := s.Save(args[0], t)
		if err != nil {
			return errors.Wrap(err, "save dataset")
		}
		fmt.Printf("saved %s (%s)\n", d.Name, d.ID)
		return nil
	},
}

var datasetGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a stored dataset's table in wire form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		d, err := s.Load(args[0])
		if err != nil {
			return errors.Wrap(err, "load dataset")
		}
		out, err := json.Marshal(d.Table)
		if err != nil {
			return errors.Wrap(err, "encode table")
		}
		fmt.Println(string(out))
		return nil
	},
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		datasets, err := s.List()
		if err != nil {
			return errors.Wrap(err, "list datasets")
		}
		for _, d := range datasets {
			fmt.Printf("%s\t%s\t%s\n", d.Name, d.ID, d.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Delete(args[0]); err != nil {
			return errors.Wrap(err, "delete dataset")
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetSaveCmd)
	datasetCmd.AddCommand(datasetGetCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetDeleteCmd)
}

// openStore builds the store from resolved flags and config.
func openStore() (store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve data dir")
	}
	s, err := store.Open(store.Config{Backend: resolveBackend(), DataDir: dataDir})
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	return s, nil
}
