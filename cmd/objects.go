package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List all object API names",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := connect(ctx)
		if err != nil {
			return err
		}

		names, err := client.ObjectNames(ctx)
		if err != nil {
			return fmt.Errorf("listing objects: %w", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}
