package folioscan

import "testing"

func TestCheckISINFormat(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"US0378331005", true},
		{"us0378331005", true},  // case folded before checking
		{" IE00B3RBWM25", true}, // trimmed before checking
		{"US0378331004", true},  // wrong check digit, but the format check does not see it
		{"US037833100", false},  // 11 characters
		{"US03783310055", false},
		{"0S0378331005", false}, // digit where a letter is required
		{"US037833100A", false}, // letter where the final digit is required
		{"US03783 1005", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := CheckISINFormat(tc.in); got != tc.want {
			t.Errorf("CheckISINFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateISIN(t *testing.T) {
	valids := []string{
		"US0378331005", // Apple
		"US5949181045", // Microsoft
		"IE00B3RBWM25", // Vanguard FTSE All-World
		"GB0002634946", // BAE Systems
		"DE0007164600", // SAP
	}
	for _, isin := range valids {
		if err := ValidateISIN(isin); err != nil {
			t.Errorf("ValidateISIN(%q) = %v, want nil", isin, err)
		}
	}

	invalids := []struct {
		isin string
		why  string
	}{
		{"US0378331004", "corrupted check digit"},
		{"US0378331050", "transposed digits"},
		{"US037833100", "short"},
		{"us0378331005", "lowercase is not accepted by the strict validator"},
	}
	for _, tc := range invalids {
		if err := ValidateISIN(tc.isin); err == nil {
			t.Errorf("ValidateISIN(%q) = nil, want error (%s)", tc.isin, tc.why)
		}
	}
}
