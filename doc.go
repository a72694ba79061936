// Package fondo implements the profit-distribution and capital-evolution
// engine of a small managed trading pool. It turns two append-only ledgers
// (trade results and investor capital movements) into per-investor
// allocations and time series.
//
// The core functionalities include:
//   - Ledger Normalization: turning raw spreadsheet rows into typed trade and
//     capital-movement records, with lenient cell coercion and strict schema
//     checks.
//   - Capital Accounting: net contributed capital per investor as of a
//     reference date, with withdrawals applied immediately and permanently.
//   - Profit Distribution: the monthly snapshot allocating the current month's
//     trading profit proportionally to net capital, after a tiered
//     performance fee credited to the managing partner.
//   - Capital Evolution: cumulative and periodic (day/month/year) series of
//     capital, allocated profit and ROI per investor, built by replaying both
//     ledgers chronologically.
//   - Data Persistence: encoding and decoding ledgers to and from
//     human-readable JSONL files, plus CSV export and JSON import.
//
// Every entry point is a stateless computation over a full ledger snapshot:
// nothing is cached and no state survives between calls. This package serves
// as the foundational logic for the `fdo` command-line tool.
package fondo
