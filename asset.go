package folioscan

import (
	"context"
	"fmt"
)

// AssetCategory is the closed set of identifier categories a raw token can be
// classified into. It is an int-backed enumeration so that serialization goes
// through an exhaustive switch: adding a category without handling it is a
// marshal error, not a silent string.
type AssetCategory int

const (
	// CategoryUnknown is the zero value: the token matched no known identifier shape.
	CategoryUnknown AssetCategory = iota
	// CategoryISIN is a 12-character International Securities Identification Number.
	CategoryISIN
	// CategoryTicker is a short trading symbol, optionally with an exchange suffix.
	CategoryTicker
	// CategoryName is a free-text security or company name.
	CategoryName
)

// String returns the wire label for the category.
func (c AssetCategory) String() string {
	switch c {
	case CategoryISIN:
		return "ISIN"
	case CategoryTicker:
		return "TICKER"
	case CategoryName:
		return "NAME"
	case CategoryUnknown:
		return "UNKNOWN"
	}
	return fmt.Sprintf("AssetCategory(%d)", int(c))
}

// MarshalJSON encodes the category as its wire label. It rejects values
// outside the closed set so a new category cannot leak out unlabeled.
func (c AssetCategory) MarshalJSON() ([]byte, error) {
	switch c {
	case CategoryISIN, CategoryTicker, CategoryName, CategoryUnknown:
		return []byte(`"` + c.String() + `"`), nil
	}
	return nil, fmt.Errorf("invalid asset category %d", int(c))
}

// UnmarshalJSON decodes a wire label back into a category.
func (c *AssetCategory) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"ISIN"`:
		*c = CategoryISIN
	case `"TICKER"`:
		*c = CategoryTicker
	case `"NAME"`:
		*c = CategoryName
	case `"UNKNOWN"`:
		*c = CategoryUnknown
	default:
		return fmt.Errorf("invalid asset category %s", data)
	}
	return nil
}

// ClassifiedAsset is one line item of a portfolio batch. It is created once
// per input token and filled in stages: Classify sets the category and the
// direct identifier, enrichment may later fill ISIN for tickers and names,
// and NormalizeWeights fills Weight. Fields are never retracted.
type ClassifiedAsset struct {
	// OriginalValue is the verbatim input token.
	OriginalValue string
	// Category is the identifier category decided by the classifier.
	Category AssetCategory
	// ISIN is set directly for CategoryISIN, or by enrichment for
	// CategoryTicker and CategoryName. Nil when unresolved.
	ISIN *string
	// Ticker is the upper-cased token, set only for CategoryTicker.
	Ticker *string
	// Weight is the normalized portfolio weight in [0,1], set by
	// NormalizeWeights. Nil until that stage runs.
	Weight *float64
	// ErrorMessage records why classification or enrichment could not
	// produce a definitive result. It never aborts the batch.
	ErrorMessage *string
}

// setError records a non-fatal failure message on the asset.
func (a *ClassifiedAsset) setError(msg string) { a.ErrorMessage = &msg }

// LookupResult is the successful outcome of an external ISIN lookup.
type LookupResult struct {
	// ISIN is the resolved identifier, upper-cased.
	ISIN string
	// Category is an optional label for the instrument kind as reported by
	// the source (for example "etf", "equity", "bond"). May be empty.
	Category string
}

// IsinLookuper resolves a missing ISIN for a ticker or a name through an
// external, unreliable service. Implementations must honor the context
// deadline; the pipeline treats every non-nil error the same way, by leaving
// the ISIN absent and recording the failure on the item.
type IsinLookuper interface {
	LookupISIN(ctx context.Context, query string, hint AssetCategory) (LookupResult, error)
}
