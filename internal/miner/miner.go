package miner

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ebkarlson404/StarFieldMiner/internal/diagnostic"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

// Sink receives rendered rows. The first row written is the header.
type Sink interface {
	Write(row []string) error
}

// Summary reports the outcome of one miner run.
type Summary struct {
	Emitted     int
	Skipped     int
	Diagnostics diagnostic.Diagnostics
}

// Miner turns the corpus into rows.
type Miner interface {
	Name() string
	Header() []string
	Run(reg *record.Registry, sink Sink) (Summary, error)
}

// Options configures a miner.
type Options struct {
	Policy Policy
	Logger *zap.Logger
}

// Constructor creates a configured miner.
type Constructor func(opts Options) Miner

var miners = map[string]Constructor{
	ShipWeaponName: func(opts Options) Miner { return NewShipWeaponMiner(opts) },
}

// Lookup returns the constructor of the named miner.
func Lookup(name string) (Constructor, bool) {
	ctor, ok := miners[name]
	return ctor, ok
}

// Names returns the registered miner names, sorted.
func Names() []string {
	names := make([]string, 0, len(miners))
	for name := range miners {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}
