package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/minikit/core/request"
)

type requestFlags struct {
	data        string
	loading     bool
	hideLoading bool
	defaultMsg  string
}

func getCmd(flags *globalFlags) *cobra.Command {
	return requestCmd(flags, "get", "Send a GET request", false)
}

func postCmd(flags *globalFlags) *cobra.Command {
	return requestCmd(flags, "post", "Send a POST request", true)
}

func requestCmd(flags *globalFlags, name, short string, post bool) *cobra.Command {
	rf := &requestFlags{}

	cmd := &cobra.Command{
		Use:   name + " <path> [key=value...]",
		Short: short,
		Long: short + ` to <MINIKIT_BASE_URL><path> and print the envelope data.

Parameters come from key=value arguments or a JSON object passed with --data.
The session cookie returned by the server is kept for the next invocation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := requestData(rf.data, args[1:])
			if err != nil {
				return err
			}

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

			opts := request.Options{
				URL:         args[0],
				Data:        data,
				ShowLoading: rf.loading,
				HideLoading: rf.hideLoading,
				DefaultMsg:  rf.defaultMsg,
			}

			var result json.RawMessage
			if post {
				result, err = client.Post(cmd.Context(), opts)
			} else {
				result, err = client.Get(cmd.Context(), opts)
			}
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&rf.data, "data", "d", "", "JSON object with request parameters")
	if post {
		cmd.Flags().BoolVar(&rf.loading, "loading", false, "Show the loading indicator")
		cmd.Flags().BoolVar(&rf.hideLoading, "hide-loading", false, "Hide the loading indicator on completion")
		cmd.Flags().StringVar(&rf.defaultMsg, "default-msg", "", "Message to toast on any unsuccessful response")
	}

	return cmd
}

func uploadCmd(flags *globalFlags) *cobra.Command {
	var fileType string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file",
		Long:  `Upload a file to the backend upload endpoint and print the returned data.`,
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

			result, err := client.Upload(cmd.Context(), args[0], fileType)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&fileType, "type", "t", request.FileTypeHeadImg, "Upload file type")

	return cmd
}

func logCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "log key=value...",
		Short: "Send an analytics record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := parsePairs(args)
			if err != nil {
				return err
			}

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

			return client.Log(cmd.Context(), record).Await()
		},
	}
}

func formIDCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "form-id <id>",
		Short: "Report a form id to the statistics endpoint",
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

			return client.AddFormID(cmd.Context(), args[0]).Await()
		},
	}
}

func logoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session cookie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.kv.RemoveE(cmd.Context(), sessionKey); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "session cleared")
			return nil
		},
	}
}

func requestData(raw string, pairs []string) (any, error) {
	data, err := parsePairs(pairs)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		if len(data) == 0 {
			return nil, nil
		}
		return data, nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	for k, v := range data {
		obj[k] = v
	}
	return obj, nil
}

// describe adds the server message or raw body to request errors.
func describe(err error) error {
	var envErr *request.EnvelopeError
	if errors.As(err, &envErr) && envErr.Envelope.Msg == "" && len(envErr.Raw) > 0 {
		return fmt.Errorf("%w: %s", err, envErr.Raw)
	}
	var respErr *request.ResponseError
	if errors.As(err, &respErr) && len(respErr.Body) > 0 {
		return fmt.Errorf("%w: %s", err, respErr.Body)
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
