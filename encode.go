package folioscan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use. encoding/json is fine for structs, but the
// result objects must keep the exact field order and explicit nulls of the
// wire format, so they are written field by field.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key-value pair to the JSON object. The value is marshaled
// with json.Marshal, so a nil pointer becomes an explicit null.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON finalizes the object construction, wraps the content in braces,
// and returns the complete JSON byte slice.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteString("{")
	out.Write(content)
	out.WriteString("}")
	return out.Bytes(), nil
}

// MarshalJSON encodes the asset in the fixed wire order with explicit nulls:
// original_value, asset_type, isin, ticker, weight, error_message.
func (a ClassifiedAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("original_value", a.OriginalValue)
	w.Append("asset_type", a.Category)
	w.Append("isin", a.ISIN)
	w.Append("ticker", a.Ticker)
	w.Append("weight", a.Weight)
	w.Append("error_message", a.ErrorMessage)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes an asset from its wire form.
func (a *ClassifiedAsset) UnmarshalJSON(data []byte) error {
	var wire struct {
		OriginalValue string        `json:"original_value"`
		Category      AssetCategory `json:"asset_type"`
		ISIN          *string       `json:"isin"`
		Ticker        *string       `json:"ticker"`
		Weight        *float64      `json:"weight"`
		ErrorMessage  *string       `json:"error_message"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	a.OriginalValue = wire.OriginalValue
	a.Category = wire.Category
	a.ISIN = wire.ISIN
	a.Ticker = wire.Ticker
	a.Weight = wire.Weight
	a.ErrorMessage = wire.ErrorMessage
	return nil
}

// EncodeClassifications writes the batch as an indented, ordered JSON array,
// one object per input item.
func EncodeClassifications(w io.Writer, batch []ClassifiedAsset) error {
	if batch == nil {
		batch = []ClassifiedAsset{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("cannot encode classifications: %w", err)
	}
	return nil
}

// DecodeClassifications reads back a batch encoded by EncodeClassifications.
func DecodeClassifications(r io.Reader) ([]ClassifiedAsset, error) {
	var batch []ClassifiedAsset
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("cannot decode classifications: %w", err)
	}
	return batch, nil
}
