package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mimesql/configs"
	"mimesql/converter"
)

type options struct {
	Verbose bool
	Index   bool

	ConfigFile string
	Server     configs.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	if errors.Is(err, converter.ErrUsage) {
		fmt.Fprint(stdout, cmd.UsageString())
		fmt.Fprintf(stdout, "\nERROR: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "ERROR: %v\n", err)
	return 1
}

func newRootCmd() *cobra.Command {
	var opts options

	var rootCmd = &cobra.Command{
		Use:   "mimesql <sourcefile> <outputfile> <database_table>",
		Short: "Generates SQL that refills a mime type table from a JSON registry",
		Long: `Generates SQL that refills a mime type table from a JSON registry.

A source file named like a subcommand has to be passed with a path,
e.g. ./server.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return converter.ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, converter.Options{
				Source: args[0],
				Output: args[1],
				Table:  args[2],
				Index:  opts.Index,
			}, opts.Verbose)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// "help" is a valid source file name; --help still works.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Report overwritten patterns on stderr")
	rootCmd.Flags().BoolVar(&opts.Index, "index", false, "Add the \"index\" column to every INSERT")

	var serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Converts using the server.mime defaults (src.json -> out.sql)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			applyFlags(&cfg, opts.Server, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return convert(cmd, converter.Options{
				Source: cfg.Source,
				Output: cfg.Output,
				Table:  cfg.Table,
				Index:  cfg.Index,
			}, opts.Verbose)
		},
	}

	serverCmd.Flags().StringVar(&opts.ConfigFile, "config", "", "YAML file overriding the defaults")
	serverCmd.Flags().StringVar(&opts.Server.Source, "source", "", "Path to the JSON registry")
	serverCmd.Flags().StringVar(&opts.Server.Output, "output", "", "Path of the SQL file to write")
	serverCmd.Flags().StringVar(&opts.Server.Table, "table", "", "Table to fill")
	serverCmd.Flags().BoolVar(&opts.Server.Index, "index", true, "Add the \"index\" column to every INSERT")

	rootCmd.AddCommand(serverCmd)
	return rootCmd
}

func loadConfig(path string) (configs.Config, error) {
	if path == "" {
		return configs.Defaults()
	}
	return configs.Load(path)
}

// applyFlags copies every flag the user set explicitly over cfg.
func applyFlags(cfg *configs.Config, set configs.Config, flags *pflag.FlagSet) {
	if flags.Changed("source") {
		cfg.Source = set.Source
	}
	if flags.Changed("output") {
		cfg.Output = set.Output
	}
	if flags.Changed("table") {
		cfg.Table = set.Table
	}
	if flags.Changed("index") {
		cfg.Index = set.Index
	}
}

func convert(cmd *cobra.Command, opts converter.Options, verbose bool) error {
	res, err := converter.Convert(opts)
	if err != nil {
		return err
	}

	if verbose {
		for _, c := range res.Collisions {
			fmt.Fprintf(cmd.ErrOrStderr(), "pattern %q: %q overwritten by %q\n", c.Pattern, c.Previous, c.Current)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d rows written to %s\n", res.Rows, opts.Output)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "generated SQL")
	return nil
}
