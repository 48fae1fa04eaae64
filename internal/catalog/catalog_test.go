package catalog

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Templates) < 10 {
		t.Errorf("got %d templates, want at least 10", len(c.Templates))
	}
}

func TestEveryTemplateHasAllLanguages(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for _, tpl := range c.Templates {
		for _, lang := range Languages {
			f, ok := tpl.Formats[lang]
			if !ok {
				t.Errorf("template %q missing language %s", tpl.ID, lang)
				continue
			}
			if !strings.Contains(f, "{title}") {
				t.Errorf("template %q %s format has no {title} placeholder", tpl.ID, lang)
			}
		}
	}
}

func TestStopwordSet(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	pt := c.StopwordSet("pt")
	if _, ok := pt["para"]; !ok {
		t.Error(`"para" missing from pt stopwords`)
	}

	// Unknown language falls back to pt
	fallback := c.StopwordSet("de")
	if len(fallback) != len(pt) {
		t.Errorf("fallback stopword set has %d words, want %d (pt)", len(fallback), len(pt))
	}
}
