// Package kvstore provides the disambiguating key-value map used as the
// backing store of every decoded JSON object.
//
// The ESM export scripts emit objects that repeat a property name once per
// repeated sub-field (keywords, damage types, properties). A plain map would
// keep only the last occurrence, so Map rewrites repeated keys instead:
//
//	Keyword     first occurrence
//	Keyword #2  second occurrence
//	Keyword #3  third occurrence
//
// Readers of repeatable fields walk the same sequence with RepeatedKey or
// Probe until a key is absent.
package kvstore
