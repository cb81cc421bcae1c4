// Package value provides a read-only model of decoded ESM export trees.
//
// A Node is one decoded JSON value. Object nodes are backed by a
// kvstore.Map, so repeated keys survive decoding as "key", "key #2", ...
//
// Absent is a first-class outcome: Field returns nil for a missing key and
// every method is nil-receiver safe, so lookups chain the way the export is
// nested:
//
//	dmg := rec.Field("WDMG - Damage").Field("Attack Damage").IntOr(0)
//
// The non-defaulting coercions (Text, Int, Float) fail with an
// esmerr.MalformedDataError; the *Or variants never fail.
package value
