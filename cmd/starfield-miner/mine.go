package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ebkarlson404/StarFieldMiner/internal/miner"
	"github.com/ebkarlson404/StarFieldMiner/internal/output"
)

func newMineCmd() *cobra.Command {
	mineCmd := &cobra.Command{
		Use:   "mine [files...]",
		Short: "Load exports and write the rows of a miner",
		RunE:  runMine,
	}

	f := mineCmd.Flags()
	f.StringP("output", "o", "", `Output file ("-" or empty for stdout)`)
	f.StringP("delimiter", "d", "", "Single-character field delimiter (default |)")
	f.StringP("miner", "m", "", "Miner to run (default ShipWeapon)")
	f.Bool("explosion-flag-gated", true, "Only follow a projectile's explosion when its explosion flag is set")
	f.Bool("crew-rating-required", true, "Skip modules whose property sheet lacks a crew rating")
	f.Float64("crew-rating-default", 0, "Crew rating used when it is not required and missing")

	return mineCmd
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg, loader, err := loadRegistry(cfg, args, log)
	if err != nil {
		return err
	}

	ctor, _ := miner.Lookup(cfg.Miner)
	m := ctor(miner.Options{Policy: cfg.MinerPolicy(), Logger: log})

	w, err := output.Create(cfg.Output, cfg.DelimiterRune())
	if err != nil {
		return err
	}

	summary, runErr := m.Run(reg, w)

	if err := w.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("writing output: %w", err)
	}

	if runErr != nil {
		return runErr
	}

	ingestDiags := loader.Diagnostics()
	log.Info("run complete",
		zap.String("miner", m.Name()),
		zap.Int("records", reg.Len()),
		zap.Int("ingest_diagnostics", ingestDiags.Len()),
		zap.Int("emitted", summary.Emitted),
		zap.Int("skipped", summary.Skipped),
		zap.Int("mine_diagnostics", summary.Diagnostics.Len()),
	)

	if ingestDiags.HasErrors() {
		return fmt.Errorf("some inputs were not loaded: %w", ingestDiags.Error())
	}

	return nil
}
