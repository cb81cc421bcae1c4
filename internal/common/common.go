// Package common holds small helpers shared across packages.
package common

// UnknownStr is rendered for enum values outside their known range.
const UnknownStr = "unknown"
