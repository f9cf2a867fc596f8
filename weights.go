package folioscan

import "github.com/shopspring/decimal"

// NormalizeWeights fills the Weight field of every asset in the batch from
// the raw valuation signals. Weights are a property of the whole batch, so
// this must run once, after every item has been classified.
//
// One policy applies per batch, decided in this order:
//
//  1. Percentage-supplied: if any value is percent-sourced, all weights are
//     taken as externally supplied fractions. Items without a percent get
//     0.0. Rounded to 3 decimals. The weights are NOT renormalized: the
//     extraction source is trusted to have reported the full composition,
//     so a sum different from 1 is accepted.
//  2. Equal-weight fallback: if any value is missing, null or zero, every
//     raw value is discarded and each item gets 1/N, rounded to 3 decimals.
//     A single unusable monetary signal invalidates proportional weighting
//     for the whole batch, because its true magnitude could dominate or be
//     negligible.
//  3. Proportional: all values are positive amounts; each weight is
//     value/total, rounded to 2 decimals. The 2-decimal rounding (versus 3
//     in the other branches) reproduces the observed behavior of the
//     original calculator and is kept as is.
//
// The batch is modified in place and returned. An empty batch is a no-op.
func NormalizeWeights(batch []ClassifiedAsset, values []RawValue) []ClassifiedAsset {
	if len(batch) == 0 {
		return batch
	}

	// Unpaired items count as absent values.
	for len(values) < len(batch) {
		values = append(values, NoValue())
	}

	hasPercent := false
	hasUnusable := false
	for i := range batch {
		switch values[i].Kind() {
		case ValuePercent:
			hasPercent = true
		case ValueAbsent, ValueNull:
			hasUnusable = true
		case ValueNumber:
			if values[i].Number() == 0 {
				hasUnusable = true
			}
		}
	}

	switch {
	case hasPercent:
		for i := range batch {
			w := 0.0
			if values[i].Kind() == ValuePercent {
				w = round(values[i].Fraction(), 3)
			}
			batch[i].Weight = &w
		}

	case hasUnusable:
		equal := round(1.0/float64(len(batch)), 3)
		for i := range batch {
			w := equal
			batch[i].Weight = &w
		}

	default:
		total := decimal.Zero
		for i := range batch {
			total = total.Add(decimal.NewFromFloat(values[i].Number()))
		}
		if !total.IsPositive() {
			// all-zero batches are caught above; this guards division anyway
			return batch
		}
		for i := range batch {
			w, _ := decimal.NewFromFloat(values[i].Number()).Div(total).Round(2).Float64()
			batch[i].Weight = &w
		}
	}
	return batch
}

// round rounds v half away from zero to the given number of decimals.
func round(v float64, places int32) float64 {
	r, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return r
}
