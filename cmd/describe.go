package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	describeFromCache  bool
	describeWriteCache bool
)

var describeCmd = &cobra.Command{
	Use:   "describe [objects...]",
	Short: "Load object definitions and print their field schemas",
	Long: `Loads field definitions for the given objects (or the objects listed in
the config file, or every object the instance exposes) and prints each
schema. With --write-cache each definition is also persisted as a YAML
snapshot; with --from-cache definitions are read from snapshots instead of
the live API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		names := args
		if len(names) == 0 {
			names = cfg.Objects
		}

		cat, err := loadCatalog(ctx, names, describeFromCache, describeWriteCache)
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			return fmt.Errorf("no object definitions loaded")
		}

		for i, object := range cat.Objects() {
			fields := cat.Fields(object)
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s (%d fields)\n", object, fields.Len())
			for _, f := range fields.Fields() {
				line := fmt.Sprintf("  %-40s %-12s %s", f.Name, f.Type, f.DisplayLabel())
				if f.IsReference() {
					line += " -> " + f.Reference
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeFromCache, "from-cache", false, "load definitions from the snapshot cache")
	describeCmd.Flags().BoolVar(&describeWriteCache, "write-cache", false, "persist loaded definitions as snapshots")
	rootCmd.AddCommand(describeCmd)
}
