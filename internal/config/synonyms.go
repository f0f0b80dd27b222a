package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/schemas"
)

// LoadSynonyms reads a synonym table from a JSON file mapping canonical skill
// names to lists of alternate surface forms. The file is validated against
// the synonyms JSON Schema before parsing when the schema can be located
// (validation is skipped, not failed, when it cannot).
func LoadSynonyms(path string) (map[string][]string, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/synonyms.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("synonyms file %s is invalid: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file %s: %w", path, err)
	}

	var synonyms map[string][]string
	if err := json.Unmarshal(data, &synonyms); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms JSON: %w", err)
	}

	return synonyms, nil
}
