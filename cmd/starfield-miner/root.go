package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ebkarlson404/StarFieldMiner/internal/common"
	"github.com/ebkarlson404/StarFieldMiner/internal/config"
	"github.com/ebkarlson404/StarFieldMiner/internal/ingest"
	"github.com/ebkarlson404/StarFieldMiner/internal/logging"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

var version = "0.1.0-dev"

var errNoInputs = errors.New("no input files: pass them as arguments or list them under inputs in the config")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starfield-miner",
		Short: "Mine tabular data from Starfield ESM JSON exports",
		Long: `starfield-miner loads the JSON that xEdit exports from Starfield plugins,
resolves cross-record references and writes one delimiter-separated row per
mined entity.

Settings come from an optional YAML config, then STARFIELD_MINER_* environment
variables (a .env file in the working directory is read), then flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to a YAML config file")
	pf.String("encoding", "", "Encoding of the input files (default cp1252)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: console or json")
	pf.Bool("keep-going", false, "Skip input files that cannot be read instead of stopping")

	rootCmd.AddCommand(newMineCmd(), newInspectCmd(), newMinersCmd(), newConfigCmd())

	return rootCmd
}

// loadConfig resolves the run configuration: file, then environment, then
// the flags that were set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	strs := map[string]*string{
		"encoding":   &cfg.Encoding,
		"log-level":  &cfg.Log.Level,
		"log-format": &cfg.Log.Format,
		"output":     &cfg.Output,
		"delimiter":  &cfg.Delimiter,
		"miner":      &cfg.Miner,
	}

	for name, dst := range strs {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}

		v, err := flags.GetString(name)
		if err != nil {
			return err
		}

		*dst = v
	}

	bools := map[string]**bool{
		"explosion-flag-gated": &cfg.Policy.ExplosionFlagGated,
		"crew-rating-required": &cfg.Policy.CrewRating.Required,
	}

	for name, dst := range bools {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}

		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}

		*dst = &v
	}

	if flags.Lookup("keep-going") != nil && flags.Changed("keep-going") {
		v, err := flags.GetBool("keep-going")
		if err != nil {
			return err
		}

		cfg.KeepGoing = v
	}

	if flags.Lookup("crew-rating-default") != nil && flags.Changed("crew-rating-default") {
		v, err := flags.GetFloat64("crew-rating-default")
		if err != nil {
			return err
		}

		cfg.Policy.CrewRating.Default = &v
	}

	return nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
}

// loadRegistry loads the inputs named by args, or by the config when args is
// empty, into a fresh registry. With keep_going, unreadable files are left in
// the loader's diagnostics for the caller to report.
func loadRegistry(cfg *config.Config, args []string, log *zap.Logger) (*record.Registry, *ingest.Loader, error) {
	inputs := args
	if common.IsEmpty(inputs) {
		inputs = cfg.Inputs
	}

	if common.IsEmpty(inputs) {
		return nil, nil, errNoInputs
	}

	reg := record.NewRegistry()
	loader := ingest.NewLoader(reg, ingest.Options{
		Encoding:  cfg.Encoding,
		KeepGoing: cfg.KeepGoing,
		Logger:    log,
	})

	if _, err := loader.LoadFiles(inputs); err != nil && !cfg.KeepGoing {
		return nil, nil, err
	}

	log.Debug("registry ready", zap.Int("records", reg.Len()), zap.Any("tags", reg.Tags()))

	return reg, loader, nil
}
