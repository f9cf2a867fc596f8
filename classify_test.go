package folioscan

import "testing"

func TestClassifier_Classify(t *testing.T) {
	c := &Classifier{}

	testCases := []struct {
		name       string
		token      string
		wantCat    AssetCategory
		wantISIN   string // "" means nil expected
		wantTicker string // "" means nil expected
		wantErrMsg bool
	}{
		{name: "apple isin", token: "US0378331005", wantCat: CategoryISIN, wantISIN: "US0378331005"},
		{name: "lowercase isin", token: "us0378331005", wantCat: CategoryISIN, wantISIN: "US0378331005"},
		{name: "isin with surrounding spaces", token: "  IE00B3RBWM25  ", wantCat: CategoryISIN, wantISIN: "IE00B3RBWM25"},
		{name: "isin bad country code", token: "QQ0378331005", wantCat: CategoryUnknown, wantErrMsg: true},
		{name: "isin with embedded space", token: "US03783 31005", wantCat: CategoryName}, // contains a space, so it reads as a name
		{name: "plain ticker", token: "AAPL", wantCat: CategoryTicker, wantTicker: "AAPL"},
		{name: "lowercase ticker", token: "vod", wantCat: CategoryTicker, wantTicker: "VOD"},
		{name: "ticker with exchange suffix", token: "VOD.L", wantCat: CategoryTicker, wantTicker: "VOD.L"},
		{name: "milan suffix", token: "ENEL.MI", wantCat: CategoryTicker, wantTicker: "ENEL.MI"},
		{name: "alphanumeric ticker with suffix", token: "7203.T", wantCat: CategoryTicker, wantTicker: "7203.T"},
		{name: "seven letters is not a ticker", token: "ABCDEFG", wantCat: CategoryUnknown, wantErrMsg: true},
		{name: "name with spaces", token: "Vanguard FTSE All-World", wantCat: CategoryName},
		{name: "name with corporate indicator", token: "Enel SpA", wantCat: CategoryName},
		{name: "dotted name", token: "Amazon.comInc", wantCat: CategoryName},
		{name: "hyphenated single word", token: "Allianz-Fonds", wantCat: CategoryName},
		{name: "empty", token: "", wantCat: CategoryUnknown, wantErrMsg: true},
		{name: "whitespace only", token: "   ", wantCat: CategoryUnknown, wantErrMsg: true},
		{name: "digits only", token: "1234567", wantCat: CategoryUnknown, wantErrMsg: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.token)

			if got.OriginalValue != tc.token {
				t.Errorf("OriginalValue = %q, want %q", got.OriginalValue, tc.token)
			}
			if got.Category != tc.wantCat {
				t.Fatalf("Category = %v, want %v", got.Category, tc.wantCat)
			}
			if tc.wantISIN == "" && got.ISIN != nil {
				t.Errorf("ISIN = %q, want nil", *got.ISIN)
			}
			if tc.wantISIN != "" && (got.ISIN == nil || *got.ISIN != tc.wantISIN) {
				t.Errorf("ISIN = %v, want %q", got.ISIN, tc.wantISIN)
			}
			if tc.wantTicker == "" && got.Ticker != nil {
				t.Errorf("Ticker = %q, want nil", *got.Ticker)
			}
			if tc.wantTicker != "" && (got.Ticker == nil || *got.Ticker != tc.wantTicker) {
				t.Errorf("Ticker = %v, want %q", got.Ticker, tc.wantTicker)
			}
			if tc.wantErrMsg && (got.ErrorMessage == nil || *got.ErrorMessage == "") {
				t.Errorf("expected a non-empty ErrorMessage")
			}
			if !tc.wantErrMsg && got.ErrorMessage != nil {
				t.Errorf("unexpected ErrorMessage %q", *got.ErrorMessage)
			}
			if got.Weight != nil {
				t.Errorf("Classify must not set Weight, got %v", *got.Weight)
			}
		})
	}
}

func TestClassifier_CustomCountryCodes(t *testing.T) {
	// PL is not in the default allow-list.
	token := "PL0378331005"

	c := &Classifier{}
	if got := c.Classify(token); got.Category != CategoryUnknown {
		t.Errorf("default classifier: Category = %v, want UNKNOWN", got.Category)
	}

	c = &Classifier{CountryCodes: []string{"PL"}}
	if got := c.Classify(token); got.Category != CategoryISIN {
		t.Errorf("PL classifier: Category = %v, want ISIN", got.Category)
	}
}

func TestClassifier_StrictISIN(t *testing.T) {
	// Same code with a corrupted check digit.
	bad := "US0378331004"

	c := &Classifier{}
	if got := c.Classify(bad); got.Category != CategoryISIN {
		t.Errorf("lenient classifier: Category = %v, want ISIN (format check only)", got.Category)
	}

	c = &Classifier{StrictISIN: true}
	if got := c.Classify(bad); got.Category != CategoryUnknown {
		t.Errorf("strict classifier: Category = %v, want UNKNOWN", got.Category)
	}
	if got := c.Classify("US0378331005"); got.Category != CategoryISIN {
		t.Errorf("strict classifier: valid ISIN rejected, Category = %v", got.Category)
	}
}
