// Package cryptofolio implements a local-first cryptocurrency portfolio
// tracker.
//
// The package holds the domain model: transaction records, the ordered
// ledger of records, the pure aggregation functions deriving coin groups
// and portfolio summaries, and the file-backed store persisting records
// and settings on the local device.
//
// Market data comes from the coingecko subpackage, terminal views from
// the renderer subpackage, and the CLI from cmd. Nothing in this package
// performs network calls: aggregation is a pure function over a snapshot
// of the record collection, recomputed on every read.
package cryptofolio
