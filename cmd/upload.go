package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <record-id> <file>",
	Short: "Upload a file and attach it to a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := connect(ctx)
		if err != nil {
			return err
		}

		res, err := client.UploadFile(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("uploaded %s as ContentVersion %s\n", args[1], res.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
