// Package folioscan classifies financial-asset line items extracted from a
// portfolio screenshot and computes a normalized portfolio weight for each.
//
// The core pipeline is pure and deterministic:
//   - Identifier Classification: deciding from string rules alone whether a
//     raw token is an ISIN, a ticker, a free-text name, or unknown.
//   - Weight Normalization: turning heterogeneous valuation signals
//     (monetary amounts, percentage strings, or nothing) into one consistent
//     set of weights per batch.
//   - Orchestration: feeding an extraction document through classification,
//     optional ISIN enrichment, and normalization, preserving item order.
//
// Everything with a network on the other side is a collaborator behind an
// interface: the vision model that reads the screenshot (package ocr) and
// the search-based ISIN resolution (package lookup). Per-item faults are
// recorded on the item and never abort a batch.
//
// This package is the foundational logic for the `fsc` command-line tool.
package folioscan
