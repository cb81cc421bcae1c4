// Package diagnostic collects non-fatal findings of an ingestion or mining
// run.
//
// Findings are coded so callers can count or filter them:
//   - record-level problems found while ingesting (malformed header, duplicate form id)
//   - seeds skipped by a miner, with the error that aborted them
//   - conditions a miner did not recognize and policy defaults it applied
package diagnostic
