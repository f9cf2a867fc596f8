package folioscan

import (
	"math"
	"testing"
)

func weightsOf(t *testing.T, batch []ClassifiedAsset) []float64 {
	t.Helper()
	out := make([]float64, len(batch))
	for i, a := range batch {
		if a.Weight == nil {
			t.Fatalf("item %d has no weight", i)
		}
		out[i] = *a.Weight
	}
	return out
}

func newBatch(n int) []ClassifiedAsset {
	c := &Classifier{}
	batch := make([]ClassifiedAsset, n)
	for i := range batch {
		batch[i] = c.Classify("AAPL")
	}
	return batch
}

func TestNormalizeWeights_EqualWeightFallback(t *testing.T) {
	// One unusable monetary signal invalidates proportional weighting for
	// the whole batch.
	batch := newBatch(4)
	values := []RawValue{NumberValue(100), NullValue(), NumberValue(50), NumberValue(200)}

	got := weightsOf(t, NormalizeWeights(batch, values))
	for i, w := range got {
		if w != 0.25 {
			t.Errorf("weight[%d] = %v, want 0.25", i, w)
		}
	}
}

func TestNormalizeWeights_ZeroTriggersFallback(t *testing.T) {
	batch := newBatch(2)
	values := []RawValue{NumberValue(0), NumberValue(100)}

	got := weightsOf(t, NormalizeWeights(batch, values))
	for i, w := range got {
		if w != 0.5 {
			t.Errorf("weight[%d] = %v, want 0.5", i, w)
		}
	}
}

func TestNormalizeWeights_FallbackRounding(t *testing.T) {
	batch := newBatch(3)
	values := []RawValue{NullValue(), NullValue(), NullValue()}

	got := weightsOf(t, NormalizeWeights(batch, values))
	for i, w := range got {
		if w != 0.333 {
			t.Errorf("weight[%d] = %v, want 0.333", i, w)
		}
	}
}

func TestNormalizeWeights_Proportional(t *testing.T) {
	batch := newBatch(3)
	values := []RawValue{NumberValue(100), NumberValue(200), NumberValue(700)}

	got := weightsOf(t, NormalizeWeights(batch, values))
	want := []float64{0.10, 0.20, 0.70}
	sum := 0.0
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("weight[%d] = %v, want %v", i, got[i], want[i])
		}
		sum += got[i]
	}
	if math.Abs(sum-1.00) > 1e-9 {
		t.Errorf("sum = %v, want 1.00", sum)
	}
}

func TestNormalizeWeights_PercentageSupplied(t *testing.T) {
	batch := newBatch(2)
	values := []RawValue{PercentValue(0.25), PercentValue(0.75)}

	got := weightsOf(t, NormalizeWeights(batch, values))
	if got[0] != 0.25 || got[1] != 0.75 {
		t.Errorf("weights = %v, want [0.25 0.75]", got)
	}
}

func TestNormalizeWeights_PercentageNoRenormalization(t *testing.T) {
	// Partial percentages are taken as-is: the missing item gets 0.0 and the
	// batch is deliberately NOT renormalized to sum to 1.
	batch := newBatch(2)
	values := []RawValue{PercentValue(0.25), NullValue()}

	got := weightsOf(t, NormalizeWeights(batch, values))
	if got[0] != 0.25 || got[1] != 0.0 {
		t.Errorf("weights = %v, want [0.25 0]", got)
	}
	if got[0]+got[1] >= 1.0 {
		t.Errorf("sum = %v; this batch must not sum to 1", got[0]+got[1])
	}
}

func TestNormalizeWeights_PercentageBeatsMonetary(t *testing.T) {
	// A single percent signal puts the whole batch under the
	// externally-supplied policy; monetary amounts are ignored.
	batch := newBatch(3)
	values := []RawValue{PercentValue(0.40), NumberValue(1500), NullValue()}

	got := weightsOf(t, NormalizeWeights(batch, values))
	want := []float64{0.40, 0.0, 0.0}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("weight[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeWeights_PercentRounding(t *testing.T) {
	batch := newBatch(1)
	// 33.3333% comes in as a fraction with more than 3 decimals.
	values := []RawValue{PercentValue(0.333333)}

	got := weightsOf(t, NormalizeWeights(batch, values))
	if got[0] != 0.333 {
		t.Errorf("weight = %v, want 0.333", got[0])
	}
}

func TestNormalizeWeights_SingleItem(t *testing.T) {
	t.Run("proportional", func(t *testing.T) {
		batch := newBatch(1)
		got := weightsOf(t, NormalizeWeights(batch, []RawValue{NumberValue(1234.5)}))
		if got[0] != 1.0 {
			t.Errorf("weight = %v, want 1.0", got[0])
		}
	})
	t.Run("fallback", func(t *testing.T) {
		batch := newBatch(1)
		got := weightsOf(t, NormalizeWeights(batch, []RawValue{NoValue()}))
		if got[0] != 1.0 {
			t.Errorf("weight = %v, want 1.0", got[0])
		}
	})
}

func TestNormalizeWeights_EmptyBatch(t *testing.T) {
	got := NormalizeWeights(nil, nil)
	if len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestNormalizeWeights_ShortValues(t *testing.T) {
	// Missing value entries count as absent, which forces the fallback.
	batch := newBatch(2)
	got := weightsOf(t, NormalizeWeights(batch, []RawValue{NumberValue(100)}))
	if got[0] != 0.5 || got[1] != 0.5 {
		t.Errorf("weights = %v, want [0.5 0.5]", got)
	}
}
