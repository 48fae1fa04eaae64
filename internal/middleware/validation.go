package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field limits matching the database schema and pipeline input constraints.
const (
	MaxNicheLen      = 80
	MaxSearchNameLen = 120
	MaxOwnerIDLen    = 64
	MinChannels      = 10
	MaxChannels      = 100
	MaxCycles        = 52
	MaxLanguages     = 8
)

var (
	// languageRe matches supported two-letter language codes.
	languageRe = regexp.MustCompile(`^[a-z]{2}$`)
	// ulidRe matches Crockford base32 ULIDs as used for saved-search IDs.
	ulidRe = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	// regionRe matches ISO 3166-1 alpha-2 region codes.
	regionRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateNiche checks that a principal niche is present and within limits.
func ValidateNiche(niche string) (string, string) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return "", "nicho é obrigatório"
	}
	if len(niche) > MaxNicheLen {
		return "", "nicho deve ter no máximo 80 caracteres"
	}
	return niche, ""
}

// ValidateLanguage checks a two-letter language code, defaulting to pt.
func ValidateLanguage(lang string) (string, string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "pt", ""
	}
	if !languageRe.MatchString(lang) {
		return "", "idioma deve ser um código de duas letras (pt, en, es)"
	}
	return lang, ""
}

// ValidateSupportedLanguage checks a code against the languages the
// catalogues cover. Unlike ValidateLanguage it rejects unknown codes
// instead of defaulting, so per-language results are never mislabeled.
func ValidateSupportedLanguage(lang string) (string, string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "pt", "en", "es":
		return lang, ""
	}
	return "", "idioma não suportado: use pt, en ou es"
}

// ClampChannelCount forces the channel limit into [10, 100].
func ClampChannelCount(n int) int {
	if n < MinChannels {
		return MinChannels
	}
	if n > MaxChannels {
		return MaxChannels
	}
	return n
}

// ValidateSearchID checks the ULID format of a saved-search ID.
func ValidateSearchID(id string) (string, string) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if !ulidRe.MatchString(id) {
		return "", "id de pesquisa inválido"
	}
	return id, ""
}

// ValidateOwnerID checks the owner header value.
func ValidateOwnerID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "cabeçalho X-Owner-ID é obrigatório"
	}
	if len(id) > MaxOwnerIDLen {
		return "", "X-Owner-ID deve ter no máximo 64 caracteres"
	}
	return id, ""
}

// ValidateRegion checks an uppercase two-letter region code, defaulting to BR.
func ValidateRegion(region string) (string, string) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return "BR", ""
	}
	if !regionRe.MatchString(region) {
		return "", "região deve ser um código de duas letras (BR, US, ...)"
	}
	return region, ""
}
