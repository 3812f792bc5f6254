package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"resumescore/internal/errors"
	"resumescore/internal/types"
)

// seedFile is the JSON shape of an external seed file.
type seedFile struct {
	Sets []types.KeywordSet `json:"sets"`
}

// ParseSeed decodes keyword sets from seed JSON. The source argument only
// labels error messages.
func ParseSeed(data []byte, source string) ([]types.KeywordSet, error) {
	var sf seedFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Corpus seed is not valid JSON: %s", source), err)
	}

	for i, set := range sf.Sets {
		if len(set.Keywords) == 0 {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("Corpus seed set %d (%s/%s) has no keywords", i, set.Industry, set.Level), nil)
		}
		for _, k := range set.Keywords {
			if k.Weight < 1 || k.Weight > 5 {
				return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
					fmt.Sprintf("Keyword %q in set %s/%s has weight %d outside 1..5", k.Keyword, set.Industry, set.Level, k.Weight), nil)
			}
		}
	}

	return sf.Sets, nil
}

// LoadSeedFile reads keyword sets from a JSON seed file. Sets in the file
// override built-in sets with the same (industry, level) key when merged.
func LoadSeedFile(path string) ([]types.KeywordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read corpus seed file: %s", path), err)
	}
	return ParseSeed(data, path)
}

// MergeSets combines base and override sets; overrides win on key clashes.
func MergeSets(base, overrides []types.KeywordSet) []types.KeywordSet {
	merged := make(map[string]types.KeywordSet, len(base)+len(overrides))
	order := make([]string, 0, len(base)+len(overrides))

	add := func(sets []types.KeywordSet) {
		for _, set := range sets {
			key := storeKey(normalizeKey(set.Industry), normalizeKey(set.Level))
			if _, exists := merged[key]; !exists {
				order = append(order, key)
			}
			merged[key] = set
		}
	}
	add(base)
	add(overrides)

	out := make([]types.KeywordSet, 0, len(merged))
	for _, key := range order {
		out = append(out, merged[key])
	}
	return out
}

// LoadStore builds a memory store from the built-in sets, optionally merged
// with an external seed file or inline seed content. At most one of seedPath
// and seedContent may be set.
func LoadStore(seedPath, seedContent string, logger *errors.Logger) (*MemoryStore, error) {
	sets := BuiltinSets()

	switch {
	case seedPath != "":
		fileSets, err := LoadSeedFile(seedPath)
		if err != nil {
			return nil, err
		}
		sets = MergeSets(sets, fileSets)
		if logger != nil {
			logger.Info("Loaded corpus seed file",
				"path", seedPath,
				"file_sets", len(fileSets),
				"total_sets", len(sets))
		}
	case seedContent != "":
		contentSets, err := ParseSeed([]byte(seedContent), "inline seed")
		if err != nil {
			return nil, err
		}
		sets = MergeSets(sets, contentSets)
		if logger != nil {
			logger.Info("Loaded inline corpus seed",
				"content_sets", len(contentSets),
				"total_sets", len(sets))
		}
	}

	return NewMemoryStore(sets), nil
}
