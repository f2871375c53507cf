package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Re-parse the source document and rebuild the index",
	Long: `Parses the feature dictionary document from scratch, refreshes the
JSON record cache, and rebuilds the vector index. The mtime-based
cache validity check is bypassed.`,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := catalogService.Rebuild(ctx); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	cmd.Printf("Indexed %d feature records.\n", catalogService.IndexSize())
	return nil
}
