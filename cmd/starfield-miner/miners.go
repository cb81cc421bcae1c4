package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ebkarlson404/StarFieldMiner/internal/miner"
)

func newMinersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "miners",
		Short: "List the available miners and their columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, name := range miner.Names() {
				ctor, _ := miner.Lookup(name)
				m := ctor(miner.Options{})

				if _, err := fmt.Fprintf(out, "%s\n  %s\n", name, strings.Join(m.Header(), ", ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
