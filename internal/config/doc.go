// Package config loads the run configuration of starfield-miner.
//
// Values come from a YAML file (LoadFile / Parse), then from
// STARFIELD_MINER_* environment variables (ApplyEnv, which also reads a
// .env file when present), then from command line flags applied by the
// caller.
//
// Example:
//
//	version: "1"
//	inputs: [Starfield.json, ShatteredSpace.json]
//	output: out/shipweapons.csv
//	encoding: cp1252
//	delimiter: "|"
//	miner: ShipWeapon
//	keep_going: false
//	log:
//	  level: info
//	  format: console
//	policy:
//	  explosion_flag_gated: true
//	  crew_rating:
//	    required: false
//	    default: 0.25
package config
