package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/minikit/core/request"
	"github.com/dmitrymomot/minikit/core/state"
	"github.com/dmitrymomot/minikit/pkg/qrcode"
)

type userInfo = map[string]any

func stateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Work with the shared state store",
		Long:  `The user info part of the state store is persisted in the local store under "userInfo".`,
	}

	var size int
	qr := &cobra.Command{
		Use:   "qr <payload> [share-user-id]",
		Short: "Set the share QR payload and print it as a PNG data URI",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := state.New[userInfo]()
			st.QR(args[0])
			if len(args) > 1 {
				st.SetShareUserID(args[1])
			}

			img, err := st.ShareQRImage(size)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"shareQR":     st.ShareQR(),
				"shareUserId": st.ShareUserID(),
				"image":       img,
			})
		},
	}
	qr.Flags().IntVarP(&size, "size", "s", qrcode.DefaultSize, "Image size in pixels")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the persisted user info",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer a.Close()

				st := a.store()
				return printJSON(cmd.OutOrStdout(), st.Snapshot())
			},
		},
		&cobra.Command{
			Use:   "user <json>",
			Short: "Replace the user info",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var info userInfo
				if err := json.Unmarshal([]byte(args[0]), &info); err != nil {
					return fmt.Errorf("user info must be a JSON object: %w", err)
				}

				a, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer a.Close()

				a.store().Update(info)
				success(cmd.OutOrStdout(), "user info updated")
				return nil
			},
		},
		&cobra.Command{
			Use:   "fetch <path>",
			Short: "Load user info from the backend and store it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), flags)
				if err != nil {
					return err
				}
				defer a.Close()

				client, err := a.client()
				if err != nil {
					return err
				}
				defer a.finish(cmd.ErrOrStderr(), client)

				info, err := request.GetAs[userInfo](cmd.Context(), client, request.Options{URL: args[0]})
				if err != nil {
					return describe(err)
				}

				st := a.store()
				st.Update(info)
				return printJSON(cmd.OutOrStdout(), st.UserInfo())
			},
		},
		qr,
	)

	return cmd
}

func (a *app) store() *state.Store[userInfo] {
	return state.New(
		state.WithPersistence[userInfo](a.kv, state.DefaultPersistKey),
		state.WithLogger[userInfo](a.log),
	)
}
