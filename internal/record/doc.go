// Package record holds the in-memory record corpus.
//
// A Record pairs the two identifier spaces of the export (form id and
// editor id) with its four-character type tag and a read-only view of its
// payload. The Registry indexes records by form id, by editor id and by tag.
//
// Typed lookups go through Find, which returns (zero, false) when the id is
// unknown or the registered record is of a different concrete type:
//
//	ammo, ok := record.Find[*esm.Ammo](reg, "0001ABCD")
package record
