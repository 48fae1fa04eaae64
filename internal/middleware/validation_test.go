package middleware

import (
	"strings"
	"testing"
)

func TestValidateNiche(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "finanças pessoais", "finanças pessoais", false},
		{"trims whitespace", "  horta urbana  ", "horta urbana", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", 81), "", true},
		{"exactly 80", strings.Repeat("a", 80), strings.Repeat("a", 80), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateNiche(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid pt", "pt", "pt", false},
		{"valid en", "en", "en", false},
		{"uppercase normalized", "ES", "es", false},
		{"empty defaults to pt", "", "pt", false},
		{"whitespace defaults to pt", "  ", "pt", false},
		{"three letters", "por", "", true},
		{"digits", "p1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateLanguage(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateSupportedLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid pt", "pt", "pt", false},
		{"valid en", "en", "en", false},
		{"valid es", "es", "es", false},
		{"uppercase normalized", "ES", "es", false},
		{"trims whitespace", " en ", "en", false},
		{"unsupported fr", "fr", "", true},
		{"unsupported de", "de", "", true},
		{"empty", "", "", true},
		{"three letters", "por", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateSupportedLanguage(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampChannelCount(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"below minimum", 3, 10},
		{"zero", 0, 10},
		{"negative", -5, 10},
		{"in range", 50, 50},
		{"at minimum", 10, 10},
		{"at maximum", 100, 100},
		{"above maximum", 500, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampChannelCount(tt.input); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateSearchID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid ulid", "01HQZX3V8N4T2M9K7P5R1W6Y0A", "01HQZX3V8N4T2M9K7P5R1W6Y0A", false},
		{"lowercase normalized", "01hqzx3v8n4t2m9k7p5r1w6y0a", "01HQZX3V8N4T2M9K7P5R1W6Y0A", false},
		{"too short", "01HQZX3V8N", "", true},
		{"empty", "", "", true},
		{"excluded letters", "01HQZX3V8N4T2M9K7P5R1W6YIL", "", true},
		{"sql injection", "'; DROP TABLE saved_searches", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateSearchID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateOwnerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "user-42", "user-42", false},
		{"trims whitespace", "  user-42  ", "user-42", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("x", 65), "", true},
		{"exactly 64", strings.Repeat("x", 64), strings.Repeat("x", 64), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateOwnerID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRegion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid BR", "BR", "BR", false},
		{"lowercase normalized", "us", "US", false},
		{"empty defaults to BR", "", "BR", false},
		{"three letters", "BRA", "", true},
		{"digits", "B1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateRegion(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
