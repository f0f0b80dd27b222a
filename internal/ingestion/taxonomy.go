package ingestion

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTaxonomy reads a newline-delimited skill taxonomy file: one canonical
// skill per line, blank lines skipped, order preserved. Loaded once per
// session; the result is never mutated after load.
func LoadTaxonomy(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var skills []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			skills = append(skills, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("taxonomy file %s contains no skills", path)
	}

	return skills, nil
}
