// Package ledger holds the in-memory transaction ledger and the arithmetic
// derived from it: fee snapshots, balance totals and date-range selection.
//
// Service fees are applied asymmetrically. A fee on income is deducted from
// what the payee receives; a fee on an expense is an extra cost to the payer.
package ledger
