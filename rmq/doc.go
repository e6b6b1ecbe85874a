// Package rmq implements the Range-Minimum-Query sparse-table oracle used
// by ansv.Verify as an independent correctness check; the ANSV protocol
// itself never queries it.
package rmq
