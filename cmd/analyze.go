package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colinp85/simpler-salesforce/internal/graph"
)

var (
	analyzeFormat    string
	analyzeFromCache bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [objects...]",
	Short: "Analyze the object reference graph and output its structure",
	Long: `Loads object definitions, builds a reference graph from their reference
fields, and outputs it in the specified format. Cycles and self-references
are reported; they are safe at query time because resolution is
single-level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		names := args
		if len(names) == 0 {
			names = cfg.Objects
		}

		cat, err := loadCatalog(ctx, names, analyzeFromCache, false)
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			return fmt.Errorf("no object definitions loaded")
		}

		g := graph.Build(cat)

		switch analyzeFormat {
		case "mermaid":
			return graph.WriteMermaid(os.Stdout, g)
		case "text":
			return graph.WriteText(os.Stdout, g)
		default:
			return fmt.Errorf("unknown format: %s (supported: mermaid, text)", analyzeFormat)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "mermaid", "output format: mermaid or text")
	analyzeCmd.Flags().BoolVar(&analyzeFromCache, "from-cache", false, "load definitions from the snapshot cache")
	rootCmd.AddCommand(analyzeCmd)
}
