package folioscan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// RawValueKind discriminates the valuation signal attached to a token.
type RawValueKind int

const (
	// ValueAbsent means the extraction reported no value at all for the token.
	ValueAbsent RawValueKind = iota
	// ValueNull means the extraction explicitly reported null, or a string
	// that could not be interpreted.
	ValueNull
	// ValueNumber is an absolute monetary amount.
	ValueNumber
	// ValuePercent is an externally supplied portfolio weight, already
	// converted to a fraction. The provenance matters: only percent values
	// trigger the percentage weighting policy.
	ValuePercent
)

// RawValue is the valuation signal extracted alongside a token. It is a
// tagged union so that a monetary 0.5 and a "50%" keep distinct meanings.
type RawValue struct {
	kind     RawValueKind
	number   float64 // monetary amount, for ValueNumber
	fraction float64 // weight fraction in [0,1], for ValuePercent
}

// NoValue returns the absent RawValue.
func NoValue() RawValue { return RawValue{kind: ValueAbsent} }

// NullValue returns the explicit-null RawValue.
func NullValue() RawValue { return RawValue{kind: ValueNull} }

// NumberValue returns a monetary RawValue.
func NumberValue(v float64) RawValue { return RawValue{kind: ValueNumber, number: v} }

// PercentValue returns a percent-sourced RawValue from a fraction (0.25 for "25%").
func PercentValue(fraction float64) RawValue { return RawValue{kind: ValuePercent, fraction: fraction} }

// Kind returns the discriminant of the value.
func (v RawValue) Kind() RawValueKind { return v.kind }

// Number returns the monetary amount; zero unless Kind is ValueNumber.
func (v RawValue) Number() float64 { return v.number }

// Fraction returns the weight fraction; zero unless Kind is ValuePercent.
func (v RawValue) Fraction() float64 { return v.fraction }

// RawItem is one extracted line: the raw token and its valuation signal.
type RawItem struct {
	Token string
	Value RawValue
}

// containerKeys are the recognized wrapper fields for the asset list, in
// lookup order.
var containerKeys = []string{"assets", "symbols", "tickers", "securities"}

// priorityFields are tried in order to pick the token out of a generic
// object entry.
var priorityFields = []string{"symbol", "ticker", "isin", "name", "code"}

// ParseExtraction normalizes the extraction collaborator's JSON output into
// an ordered batch of (token, value) pairs. Accepted shapes: the primary
// {"assets": [{"<token>": <number|string|null>}, ...]} form, a flat array of
// strings, a mapping with one of the recognized container keys, a mapping
// without one (its values become the tokens), or a single scalar.
// Only a malformed document is an error; odd entries degrade per item.
func ParseExtraction(data []byte) ([]RawItem, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty extraction output")
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid extraction JSON: %w", err)
	}
	// The model sometimes wraps the JSON document in a JSON string.
	if s, ok := root.(string); ok {
		if inner := []byte(s); json.Valid(inner) && len(bytes.TrimSpace(inner)) > 0 && bytes.TrimSpace(inner)[0] != '"' {
			return ParseExtraction(inner)
		}
		return []RawItem{{Token: s, Value: NoValue()}}, nil
	}

	switch v := root.(type) {
	case []any:
		return parseEntries(data)
	case map[string]any:
		for _, key := range containerKeys {
			jval, err := jsonpath.Get("$."+key, v)
			if err != nil {
				continue
			}
			raw := rawField(data, key)
			if _, ok := jval.([]any); ok {
				return parseEntries(raw)
			}
			// A scalar container holds a single entry.
			item, ok := parseEntry(raw)
			if !ok {
				return nil, fmt.Errorf("unusable %q container", key)
			}
			return []RawItem{item}, nil
		}
		// No recognized container: the object's values are the tokens, in
		// document order.
		return parseObjectValues(data)
	default:
		// single scalar
		return []RawItem{{Token: scalarToken(v), Value: NoValue()}}, nil
	}
}

// parseEntries decodes a JSON array of entries preserving order.
func parseEntries(data []byte) ([]RawItem, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid asset list: %w", err)
	}
	items := make([]RawItem, 0, len(entries))
	for _, entry := range entries {
		if item, ok := parseEntry(entry); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// parseEntry interprets a single list entry. A single-pair object is the
// OCR's {token: value} shape; a larger object is resolved through the
// priority fields; strings and scalars stand alone. Objects with no usable
// field are dropped.
func parseEntry(data json.RawMessage) (RawItem, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return RawItem{}, false
	}
	if data[0] == '{' {
		pairs, err := decodeOrderedObject(data)
		if err != nil || len(pairs) == 0 {
			return RawItem{}, false
		}
		if len(pairs) == 1 {
			return RawItem{Token: pairs[0].key, Value: parseValue(pairs[0].value)}, true
		}
		for _, field := range priorityFields {
			for _, p := range pairs {
				if p.key == field {
					return RawItem{Token: scalarString(p.value), Value: NoValue()}, true
				}
			}
		}
		return RawItem{}, false
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return RawItem{}, false
	}
	if s, ok := v.(string); ok {
		return RawItem{Token: s, Value: NoValue()}, true
	}
	return RawItem{Token: scalarToken(v), Value: NoValue()}, true
}

// parseObjectValues turns a generic object into items from its values,
// preserving the document's key order.
func parseObjectValues(data []byte) ([]RawItem, error) {
	pairs, err := decodeOrderedObject(data)
	if err != nil {
		return nil, err
	}
	items := make([]RawItem, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, RawItem{Token: scalarString(p.value), Value: NoValue()})
	}
	return items, nil
}

// parseValue interprets the raw JSON value attached to a token.
func parseValue(data json.RawMessage) RawValue {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return NullValue()
	}
	switch val := v.(type) {
	case nil:
		return NullValue()
	case float64:
		return NumberValue(val)
	case string:
		if strings.Contains(val, "%") {
			return parsePercent(val)
		}
		// A numeric string is tolerated as a monetary amount.
		if d, err := decimal.NewFromString(normalizeDecimal(val)); err == nil {
			f, _ := d.Float64()
			return NumberValue(f)
		}
		return NullValue()
	default:
		return NullValue()
	}
}

// parsePercent converts "25%" or "2,5 %" into a fraction. Unparseable
// percentages degrade to null, like any other unreadable signal.
func parsePercent(s string) RawValue {
	cleaned := normalizeDecimal(strings.ReplaceAll(s, "%", ""))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return NullValue()
	}
	f, _ := d.Div(decimal.NewFromInt(100)).Float64()
	return PercentValue(f)
}

// normalizeDecimal trims spaces and converts a decimal comma to a point.
func normalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

func scalarToken(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		d := decimal.NewFromFloat(val)
		return d.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

func scalarString(data json.RawMessage) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	return scalarToken(v)
}

// keyval is one field of a JSON object in document order.
type keyval struct {
	key   string
	value json.RawMessage
}

// decodeOrderedObject decodes a JSON object keeping the field order, which
// encoding/json maps discard. Batch order preservation depends on it for the
// mapping-shaped inputs.
func decodeOrderedObject(data []byte) ([]keyval, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}
	var pairs []keyval
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		pairs = append(pairs, keyval{key: key, value: raw})
	}
	return pairs, nil
}

// rawField returns the raw JSON of one top-level field of an object document.
func rawField(data []byte, key string) json.RawMessage {
	pairs, err := decodeOrderedObject(data)
	if err != nil {
		return nil
	}
	for _, p := range pairs {
		if p.key == key {
			return p.value
		}
	}
	return nil
}
