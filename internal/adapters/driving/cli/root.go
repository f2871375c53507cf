// Package cli wires the featselect commands to the core services.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	cachefile "github.com/segmint-labs/featselect-cli/internal/adapters/driven/cache/file"
	configfile "github.com/segmint-labs/featselect-cli/internal/adapters/driven/config/file"
	"github.com/segmint-labs/featselect-cli/internal/adapters/driven/embedding/ollama"
	"github.com/segmint-labs/featselect-cli/internal/adapters/driven/embedding/openai"
	"github.com/segmint-labs/featselect-cli/internal/adapters/driven/extractor"
	"github.com/segmint-labs/featselect-cli/internal/adapters/driven/vector/brute"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driving"
	"github.com/segmint-labs/featselect-cli/internal/core/services"
	"github.com/segmint-labs/featselect-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose bool
	flagConfig  string
	flagSource  string
	flagCache   string
)

// Services shared by the commands. Tests inject mocks here.
var (
	catalogService   driving.FeatureCatalog
	selectionService driving.SelectionService

	// resolvedSource is the source document path after config and
	// flag resolution; the watch command needs it.
	resolvedSource string
)

var rootCmd = &cobra.Command{
	Use:   "featselect",
	Short: "Select campaign features from a feature dictionary document",
	Long: `featselect loads a marketing feature dictionary from a PDF or
plain-text document, caches the parsed rows as JSON, and ranks the
features most related to a campaign description using embedding-based
similarity search.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
		// Credentials may live in a local .env; absence is fine.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default ~/.featselect/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "feature dictionary document path")
	rootCmd.PersistentFlags().StringVar(&flagCache, "cache", "", "JSON record cache path")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ensureServices builds the service graph once per run. Commands that
// do not touch the catalog never pay for it.
func ensureServices() error {
	if selectionService != nil && catalogService != nil {
		return nil
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		var err error
		if cfgPath, err = configfile.DefaultPath(); err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}

	cfg, err := configfile.Load(cfgPath)
	if err != nil {
		return err
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagCache != "" {
		cfg.Cache = flagCache
	}

	resolvedSource = cfg.Source
	logger.Debug("Source: %s, cache: %s, provider: %s",
		cfg.Source, cfg.Cache, cfg.Embedding.Provider)

	ext, err := extractor.ForPath(cfg.Source)
	if err != nil {
		return fmt.Errorf("source %s: %w", cfg.Source, err)
	}

	embedder, err := newEmbedder(cfg.Embedding)
	if err != nil {
		return err
	}

	catalog := services.NewCatalogService(
		cfg.Source,
		ext,
		cachefile.NewCacheStore(cfg.Cache),
		embedder,
		brute.New(),
	)
	catalogService = catalog
	selectionService = services.NewSelectionService(catalog)
	return nil
}

// newEmbedder constructs the configured embedding provider. A missing
// API key is not an error here; it surfaces on the first request.
func newEmbedder(cfg configfile.EmbeddingConfig) (driven.EmbeddingService, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewEmbeddingService(openai.Config{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}), nil
	case "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}
