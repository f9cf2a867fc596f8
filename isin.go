package folioscan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks the basic ISIN structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// CheckISINFormat reports whether s has the shape of an ISIN: exactly 12
// characters, no embedded space, two leading letters, nine alphanumerics and
// a final digit. It does NOT verify the check digit; the classifier relies on
// this weaker test on purpose, because OCR output routinely garbles one
// character and a strict check would reclassify real ISINs as names.
// Use ValidateISIN for the strict test.
func CheckISINFormat(s string) bool {
	cleaned := strings.ToUpper(strings.TrimSpace(s))
	if len(cleaned) != 12 || strings.Contains(cleaned, " ") {
		return false
	}
	return isinRegex.MatchString(cleaned)
}

// ValidateISIN checks if a string is a validly formatted ISIN, including its
// check digit. It returns nil if valid, or a descriptive error if invalid.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// Expand letters to their two-digit values (A=10 ... Z=35).
	var numeric strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numeric.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numeric.WriteRune(char)
		}
	}

	// Luhn over the expanded digit string, doubling from the right.
	sum := 0
	double := true
	digits := numeric.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(digits[i]))
		if double {
			digit *= 2
		}
		sum += (digit / 10) + (digit % 10)
		double = !double
	}

	expected := (10 - (sum % 10)) % 10
	actual, _ := strconv.Atoi(string(isin[11]))
	if expected != actual {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expected, actual)
	}
	return nil
}
