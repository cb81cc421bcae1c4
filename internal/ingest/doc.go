// Package ingest loads export files into a record registry.
//
// Files are read one after another and accumulate into the same registry.
// A file whose root is not an object of records fails the whole load; a
// single record with a broken header or an already-registered form id is
// logged, recorded as a diagnostic and skipped.
package ingest
