// Package miner derives flat report rows from the record corpus.
//
// A miner scans every record of one seed tag, follows typed links from each
// seed to the records it needs and emits one row per seed. A seed whose
// links or required fields are missing is skipped with a warning; it never
// aborts the scan.
//
// Miners are looked up by name:
//
//	m, ok := miner.Lookup("ShipWeapon")
package miner
