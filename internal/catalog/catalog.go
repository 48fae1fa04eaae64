// Package catalog holds the data-driven generation catalogues: title
// templates, per-language synonym dictionaries, and stopword lists. The
// catalogue lives in an embedded YAML file so it can be extended without
// touching generation code.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var raw []byte

// Template is one title framing. Formats maps a language code (pt/en/es)
// to a format string containing the {title} placeholder and optionally
// {keyword} and {n}.
type Template struct {
	ID         string            `yaml:"id"`
	Emotion    string            `yaml:"emocao"`
	Saturation string            `yaml:"saturacao"`
	Formats    map[string]string `yaml:"formatos"`
}

// Catalog is the full parsed catalogue.
type Catalog struct {
	Templates []Template                     `yaml:"templates"`
	Synonyms  map[string]map[string][]string `yaml:"sinonimos"`
	Stopwords map[string][]string            `yaml:"stopwords"`
}

// Languages supported by every template.
var Languages = []string{"pt", "en", "es"}

// Load parses the embedded catalogue and checks its shape.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Templates) == 0 {
		return nil, fmt.Errorf("catalog has no templates")
	}
	for _, t := range c.Templates {
		for _, lang := range Languages {
			f, ok := t.Formats[lang]
			if !ok {
				return nil, fmt.Errorf("template %q missing %s format", t.ID, lang)
			}
			if !strings.Contains(f, "{title}") {
				return nil, fmt.Errorf("template %q %s format missing {title}", t.ID, lang)
			}
		}
	}
	return &c, nil
}

// StopwordSet returns the stopword set for a language. Unknown languages
// fall back to Portuguese, the primary locale of the product.
func (c *Catalog) StopwordSet(lang string) map[string]struct{} {
	words, ok := c.Stopwords[lang]
	if !ok {
		words = c.Stopwords["pt"]
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// SynonymsFor returns the synonym dictionary for a language (may be nil).
func (c *Catalog) SynonymsFor(lang string) map[string][]string {
	return c.Synonyms[lang]
}
