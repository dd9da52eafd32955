// Package batch estimates many fractions at once.
//
// Inputs come from YAML, CSV or XLSX files ([ReadFile] picks the format from
// the extension). A [Runner] spreads the items over a fixed number of
// workers and returns one [Outcome] per item, in input order. A failed item
// carries its error and never stops the others.
package batch
