package cli

import (
	"fmt"
	"sort"
	"strings"

	"resumescore/internal/corpus"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect the keyword corpus",
	Long: `Inspect the keyword corpus used for resume scoring. The corpus
combines built-in keyword sets with any configured seed file or seed
content, keyed by industry and experience level.`,
	RunE: runCorpus,
}

func runCorpus(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	store, err := corpus.LoadStore(cfg.Corpus.SeedFile, cfg.Corpus.SeedContent, logger)
	if err != nil {
		return fmt.Errorf("failed to load keyword corpus: %w", err)
	}

	keys := store.Keys()
	sort.Strings(keys)

	fmt.Printf("Keyword corpus: %d sets\n\n", store.Len())
	for _, key := range keys {
		parts := strings.SplitN(key, "/", 2)
		set, err := store.Lookup(cmd.Context(), parts[0], parts[1])
		if err != nil {
			continue
		}
		fmt.Printf("  %-30s %d keywords, categories: %s\n",
			key, len(set.Keywords), strings.Join(set.Categories(), ", "))
	}

	if cfg.Corpus.SeedFile != "" {
		fmt.Printf("\nSeed file: %s\n", cfg.Corpus.SeedFile)
	}
	return nil
}
