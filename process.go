package folioscan

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
)

// defaultMaxParallel bounds concurrent ISIN lookups per batch.
const defaultMaxParallel = 4

// Options carries the batch-scoped configuration of one Process call. There
// is no process-wide state: two calls with different Options are fully
// independent.
type Options struct {
	// Classifier to apply; the zero-value classifier is used when nil.
	Classifier *Classifier
	// Lookup resolves missing ISINs for tickers and names. Nil disables
	// enrichment entirely.
	Lookup IsinLookuper
	// EnrichUnknown also submits UNKNOWN tokens to the lookup. The original
	// pipeline was inconsistent on this point, so it is a policy choice.
	EnrichUnknown bool
	// MaxParallel bounds concurrent lookups; defaultMaxParallel when <= 0.
	MaxParallel int
}

// Process runs the full pipeline over one extraction document: parse the
// batch, classify each token, enrich tickers and names with an ISIN where
// possible, and normalize the weights. Per-item failures are recorded on the
// item; only a malformed document is an error.
func Process(ctx context.Context, data []byte, opts Options) ([]ClassifiedAsset, error) {
	items, err := ParseExtraction(data)
	if err != nil {
		return nil, err
	}
	return ProcessItems(ctx, items, opts), nil
}

// ProcessItems runs classification, enrichment and weight normalization over
// an already-parsed batch, preserving its order.
func ProcessItems(ctx context.Context, items []RawItem, opts Options) []ClassifiedAsset {
	classifier := opts.Classifier
	if classifier == nil {
		classifier = &Classifier{}
	}

	batch := make([]ClassifiedAsset, len(items))
	values := make([]RawValue, len(items))
	for i, item := range items {
		batch[i] = classifier.Classify(item.Token)
		values[i] = item.Value
	}

	enrich(ctx, batch, opts)

	return NormalizeWeights(batch, values)
}

// enrich fills missing ISINs through the external lookup. Lookups are
// independent across items so they run on a bounded pool; each result is
// written back to its own index, keeping the batch order intact for the
// normalizer. A failed lookup degrades that single item, never the batch.
func enrich(ctx context.Context, batch []ClassifiedAsset, opts Options) {
	if opts.Lookup == nil {
		return
	}
	limit := opts.MaxParallel
	if limit <= 0 {
		limit = defaultMaxParallel
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range batch {
		if batch[i].ISIN != nil || !enrichable(batch[i].Category, opts.EnrichUnknown) {
			continue
		}
		g.Go(func() error {
			query := lookupQuery(batch[i])
			res, err := opts.Lookup.LookupISIN(ctx, query, batch[i].Category)
			if err != nil {
				batch[i].setError(fmt.Sprintf("isin lookup failed: %v", err))
				return nil
			}
			isin := strings.ToUpper(strings.TrimSpace(res.ISIN))
			if isin == "" {
				batch[i].setError("isin lookup failed: no match")
				return nil
			}
			batch[i].ISIN = &isin
			if res.Category != "" {
				log.Printf("resolved %q to %s (%s)", query, isin, res.Category)
			}
			return nil
		})
	}
	// Lookup failures are recorded per item, so the only wait outcome is done.
	g.Wait()
}

// enrichable reports whether a category is submitted to the lookup.
func enrichable(c AssetCategory, unknownToo bool) bool {
	switch c {
	case CategoryTicker, CategoryName:
		return true
	case CategoryUnknown:
		return unknownToo
	}
	return false
}

// lookupQuery picks the search text for an asset. The ticker's exchange
// suffix is left in place here: the lookup implementation decides how to
// broaden the query.
func lookupQuery(a ClassifiedAsset) string {
	if a.Category == CategoryTicker && a.Ticker != nil {
		return *a.Ticker
	}
	return strings.TrimSpace(a.OriginalValue)
}
