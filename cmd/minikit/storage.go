package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/minikit/core/storage"
)

func storageCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect the local key-value store",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print the value stored under key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer a.Close()

				var v any
				if err := a.kv.GetE(cmd.Context(), args[0], &v); err != nil {
					if errors.Is(err, storage.ErrNotFound) {
						return printJSON(cmd.OutOrStdout(), nil)
					}
					return err
				}
				return printJSON(cmd.OutOrStdout(), v)
			},
		},
		&cobra.Command{
			Use:   "set <key> <json>",
			Short: "Store a JSON value (bare words are stored as strings)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer a.Close()

				var v any
				if err := json.Unmarshal([]byte(args[1]), &v); err != nil {
					v = args[1]
				}
				if err := a.kv.SetE(cmd.Context(), args[0], v); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "stored %s", a.kv.Key(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <key>",
			Short: "Remove a key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer a.Close()

				if err := a.kv.RemoveE(cmd.Context(), args[0]); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "removed %s", a.kv.Key(args[0]))
				return nil
			},
		},
	)

	return cmd
}
