package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/minikit/core/health"
)

var errNotReady = errors.New("not ready")

func healthCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the configured storage backend is usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			report := health.Run(cmd.Context(), a.log, a.checks...)
			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Ready() {
				return errNotReady
			}
			return nil
		},
	}
}
