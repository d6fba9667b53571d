// Package pricebook turns free-form purchase ledgers into pricing
// intelligence. It is local-first: the ledger is a workbook (or a text file)
// kept by hand, and every derived table is recomputed from it on each run.
//
// The pipeline flows one way:
//   - Line Parsing: each ledger line ("113/5/10 A001 壽 金 10支 50 500") is
//     turned into a Record, resolving Republic-era dates, returns (negative
//     quantities) and units. Malformed lines are skipped and counted.
//   - Ledger: records are kept in stable chronological order, so that "the
//     latest" is well defined when several records share a day.
//   - Aggregation: latest purchase price, and quantity weighted average cost
//     per item overall and per calendar year. Returns are excluded from
//     prices but weigh on average costs.
//   - Price Alerts: single step and consecutive price increases over the
//     most recent purchases of each item.
//   - Report: all the tables above, encoded as a workbook, CSV or JSON for
//     the lookup tools built on top of them.
//
// This package serves as the foundational logic for the `pbk` command-line tool.
package pricebook
