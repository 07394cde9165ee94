package oracle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlDictionary is the on-disk YAML shape accepted by ReadYAML.
type yamlDictionary struct {
	Words []string `yaml:"words"`
}

// ReadWords reads one word per line from r. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("oracle: read words: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	return words, nil
}

// ReadYAML decodes a `words: [...]` document from r. Empty entries are dropped.
func ReadYAML(r io.Reader) ([]string, error) {
	var doc yamlDictionary
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDictionary
		}

		return nil, fmt.Errorf("oracle: decode yaml: %w", err)
	}

	words := make([]string, 0, len(doc.Words))
	var w string
	for _, w = range doc.Words {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	return words, nil
}

// Load reads a dictionary file. Files ending in .yaml or .yml are decoded with
// ReadYAML; everything else is read with ReadWords.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("oracle: open %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return ReadWords(f)
	}
}
