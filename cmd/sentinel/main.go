package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tsatke/sentinel"
	"github.com/tsatke/sentinel/internal/ctxlog"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "sentinel"
)

var (
	logLevel  string
	logFormat string
	macrosOf  string
)

var (
	rootCmd = &cobra.Command{
		Use:     AppName + " <definition file>...",
		Short:   "Run the checks of the hosts and services in the given definition files once.",
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			e := sentinel.NewEngine(
				sentinel.WithStdout(cmd.OutOrStdout()),
				sentinel.WithStderr(cmd.ErrOrStderr()),
				sentinel.WithWorkingDirectory(wd),
				sentinel.WithLogger(ctxlog.New(logLevel, logFormat, cmd.ErrOrStderr())),
			)

			if _, err := e.EvalFile(args...); err != nil {
				return err
			}

			if macrosOf == "" {
				return nil
			}

			macros, err := e.Macros(macrosOf)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(macros))
			for name := range macros {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "$%s$ = %s\n", name, macros[name])
			}
			return nil
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.Flags().StringVar(&macrosOf, "macros", "", "after running the checks, print the macros used by the check of the named host or service")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
