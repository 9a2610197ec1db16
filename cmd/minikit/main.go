package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "minikit",
		Short: "Talk to a mini-app backend from the terminal",
		Long: `minikit drives the mini-app client stack against a real backend.

It keeps the session cookie between invocations, persists values in the
namespaced local store and fires the same analytics pings the app does.

Configuration comes from the environment (or a .env file):

  MINIKIT_BASE_URL     backend base URL, e.g. https://api.example.com/
  MINIKIT_APP_NAME     storage namespace (default "minikit")
  REDIS_URL            used with --store redis
  S3_BUCKET, ...       used with --store s3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log every request and UI event")
	pf.StringVar(&flags.store, "store", storeFile, "Storage backend: file, memory, redis or s3")
	pf.StringVar(&flags.dir, "dir", "", "Directory for the file store (default: user config dir)")
	pf.BoolVar(&flags.metrics, "metrics", false, "Print request metrics after the command")

	rootCmd.AddCommand(
		getCmd(flags),
		postCmd(flags),
		uploadCmd(flags),
		logCmd(flags),
		formIDCmd(flags),
		logoutCmd(flags),
		healthCmd(flags),
		storageCmd(flags),
		stateCmd(flags),
		qrCmd(),
		sanitizeCmd(),
		versionCmd(),
	)

	return rootCmd
}
