package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/minikit/core/sanitizer"
	"github.com/dmitrymomot/minikit/pkg/qrcode"
)

func qrCmd() *cobra.Command {
	var (
		size int
		out  string
	)

	cmd := &cobra.Command{
		Use:   "qr <content>",
		Short: "Render content as a QR code PNG",
		Long:  `Render content as a QR code. Writes a PNG file with --out, otherwise prints a data URI.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				uri, err := qrcode.GenerateBase64Image(args[0], size)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), uri)
				return nil
			}

			png, err := qrcode.Generate(args[0], size)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			success(cmd.OutOrStdout(), "wrote %s (%d bytes)", out, len(png))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", qrcode.DefaultSize, "Image size in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PNG file")

	return cmd
}

func sanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <text>",
		Short: "Strip emoji and whitespace from text",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), sanitizer.StripEmoji(args[0]))
		},
	}
}

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(w, version)
				return
			}
			fmt.Fprintf(w, "  Version:    %s\n", version)
			fmt.Fprintf(w, "  Commit:     %s\n", commit)
			fmt.Fprintf(w, "  Built:      %s\n", date)
			fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
