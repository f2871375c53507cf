package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
)

var (
	selectKeywords string
	selectProduct  string
	selectLimit    int
	selectJSON     bool
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the features most related to a campaign",
	Long: `Embeds the campaign keywords and product name, runs a similarity
search over the indexed feature dictionary, and prints the top matches
with a reason and score for each.`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVarP(&selectKeywords, "keywords", "k", "", "comma-separated campaign keywords")
	selectCmd.Flags().StringVarP(&selectProduct, "product", "p", "", "product name")
	selectCmd.Flags().IntVarP(&selectLimit, "limit", "n", 10, "maximum number of results")
	selectCmd.Flags().BoolVar(&selectJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	if s, ok := selectionService.(interface{ SetResultCount(int) }); ok {
		s.SetResultCount(selectLimit)
	}

	keywords := splitKeywords(selectKeywords)
	if len(keywords) == 0 && selectProduct == "" {
		return fmt.Errorf("nothing to search for: pass --keywords and/or --product")
	}

	ctx := context.Background()
	features, err := selectionService.SelectFeatures(ctx, keywords, selectProduct)
	if err != nil {
		return fmt.Errorf("feature selection failed: %w", err)
	}

	if selectJSON {
		return outputSelectJSON(cmd, features)
	}

	return outputSelectTable(cmd, features)
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

func outputSelectJSON(cmd *cobra.Command, features []domain.SelectedFeature) error {
	data, err := json.MarshalIndent(features, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSelectTable(cmd *cobra.Command, features []domain.SelectedFeature) error {
	if len(features) == 0 {
		cmd.Println("No matching features found.")
		return nil
	}

	cmd.Println("Selected features:")
	cmd.Println()
	for i, f := range features {
		cmd.Printf("  [%d] %s (%.4f)\n", i+1, f.Name, f.SimilarityScore)
		cmd.Printf("      %s\n", f.Reason)
		cmd.Println()
	}

	return nil
}
