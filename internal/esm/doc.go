// Package esm classifies decoded export records and exposes typed views over
// them.
//
// The Factory reads the "Record Header" of every top-level object, picks a
// constructor by tag and registers the result. Tags without a constructor
// become plain *record.Base values so that new record types never break
// ingestion.
//
// Views are thin: they keep the payload and read fields on demand. A field or
// link that is absent is reported as (zero, false); only accessors documented
// as required return an error, always a *esmerr.MalformedDataError naming the
// owning record.
package esm
