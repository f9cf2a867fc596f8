package folioscan

import (
	"fmt"
	"regexp"
	"strings"
)

// tickerRegexes match the two accepted ticker shapes: a plain 1-6 letter
// symbol, or a 1-6 alphanumeric symbol with an exchange suffix (.L, .MI, .PA ...).
var tickerRegexes = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{1,6}$`),
	regexp.MustCompile(`^[A-Z0-9]{1,6}\.[A-Z]{1,3}$`),
}

// nameIndicators are substrings that mark a token as a free-text company or
// fund name when it is not an ISIN or a ticker.
var nameIndicators = []string{".", "&", "-", "Inc", "Corp", "Ltd", "SpA", "AG", "SA"}

// DefaultCountryCodes is the allow-list of ISIN country prefixes covering the
// major markets. A 12-character token whose prefix is not listed here is not
// treated as an ISIN.
var DefaultCountryCodes = []string{
	"US", "GB", "DE", "FR", "JP", "CA", "AU", "CH", "NL", "IT",
	"ES", "SE", "NO", "DK", "FI", "BE", "AT", "IE", "LU", "HK",
	"SG", "KR", "IN", "BR", "MX", "CN", "RU", "ZA", "IL", "TW",
}

// Classifier decides the identifier category of a raw token using pure
// string rules. The zero value is ready to use and applies the default
// country-code allow-list with the lenient ISIN format check.
type Classifier struct {
	// CountryCodes overrides DefaultCountryCodes when non-empty.
	CountryCodes []string
	// StrictISIN additionally verifies the ISIN check digit. The observed
	// pipeline behavior is the lenient format-only check, so this is off by
	// default.
	StrictISIN bool
}

// Classify decides the category of token. It never fails: empty or
// unrecognizable input yields CategoryUnknown with an explanatory message,
// and any internal panic is converted to the same.
func (c *Classifier) Classify(token string) (result ClassifiedAsset) {
	result = ClassifiedAsset{OriginalValue: token}
	defer func() {
		if r := recover(); r != nil {
			result.Category = CategoryUnknown
			result.ISIN, result.Ticker = nil, nil
			result.setError(fmt.Sprintf("internal error: %v", r))
		}
	}()

	cleaned := strings.TrimSpace(token)
	if cleaned == "" {
		result.setError("empty or invalid value")
		return result
	}

	if c.IsISIN(cleaned) {
		isin := strings.ToUpper(cleaned)
		result.Category = CategoryISIN
		result.ISIN = &isin
		return result
	}

	if c.IsTicker(cleaned) {
		ticker := strings.ToUpper(cleaned)
		result.Category = CategoryTicker
		result.Ticker = &ticker
		// ISIN is left for enrichment to fill, and may stay absent.
		return result
	}

	if c.IsName(cleaned) {
		result.Category = CategoryName
		return result
	}

	result.setError("unrecognized asset type")
	return result
}

// IsISIN reports whether text is an ISIN under this classifier's rules:
// the format check, a listed country prefix, and the check digit when
// StrictISIN is set.
func (c *Classifier) IsISIN(text string) bool {
	if !CheckISINFormat(text) {
		return false
	}
	cleaned := strings.ToUpper(strings.TrimSpace(text))
	if !c.allowedCountry(cleaned[:2]) {
		return false
	}
	if c.StrictISIN {
		return ValidateISIN(cleaned) == nil
	}
	return true
}

// IsTicker reports whether text matches one of the accepted ticker shapes.
func (c *Classifier) IsTicker(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if upper == "" {
		return false
	}
	for _, re := range tickerRegexes {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// IsName reports whether text looks like a company or fund name: it is not an
// ISIN and contains a space or one of the corporate indicator substrings.
func (c *Classifier) IsName(text string) bool {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" || c.IsISIN(cleaned) {
		return false
	}
	if strings.Contains(cleaned, " ") {
		return true
	}
	for _, indicator := range nameIndicators {
		if strings.Contains(cleaned, indicator) {
			return true
		}
	}
	return false
}

func (c *Classifier) allowedCountry(code string) bool {
	codes := c.CountryCodes
	if len(codes) == 0 {
		codes = DefaultCountryCodes
	}
	for _, cc := range codes {
		if code == cc {
			return true
		}
	}
	return false
}
