package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ipreg/superglue/internal/config"
	"github.com/ipreg/superglue/internal/file"
	"github.com/ipreg/superglue/internal/reconciler"
)

func newRootCommand(out io.Writer, now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:           "superglue",
		Short:         "Keep the delegation and the registrant of a domain in sync with the registry",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newModeCommand(out, now, config.ModeDelegate,
			"Modify the NS, glue, and DS records of a domain to match zone text",
			"The input lists NS, A, AAAA, and DS records in zone file syntax."),
		newModeCommand(out, now, config.ModeWhois,
			"Modify the registrant of a domain to match a JSON object",
			"The input is a flat JSON object of strings, keyed by registrant field names."),
	)

	return root
}

func newModeCommand(out io.Writer, now func() time.Time, mode config.Mode, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   mode.String() + " [flags] <domain>",
		Short: short,
		Long:  short + ".\n\n" + long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions(cmd, mode, args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), out, opts, now)
		},
	}

	cmd.Flags().String("creds", "", "file with the user and pass of the registry account")
	cmd.Flags().String("input", file.StdinPath, "file to read the desired state from (- for stdin)")
	cmd.Flags().Bool("ignore-tickets", false, "modify even when changes of the domain are still pending")
	cmd.Flags().Bool("ignore-match", false, "modify even when the registry already looks right")
	cmd.Flags().Bool("not-really", false, "stop before submitting the modification")
	cmd.Flags().String("log-level", "info", "info or debug")
	_ = cmd.MarkFlagRequired("creds")

	return cmd
}

// readOptions checks the command line before anything else happens.
func readOptions(cmd *cobra.Command, mode config.Mode, arg string) (*config.Options, error) {
	name, err := config.ParseDomain(arg)
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	verbosity, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	credsPath, _ := cmd.Flags().GetString("creds")
	input, _ := cmd.Flags().GetString("input")
	ignoreTickets, _ := cmd.Flags().GetBool("ignore-tickets")
	ignoreMatch, _ := cmd.Flags().GetBool("ignore-match")
	notReally, _ := cmd.Flags().GetBool("not-really")

	return &config.Options{
		Mode:      mode,
		Domain:    name,
		Input:     input,
		CredsPath: credsPath,
		Flags:     reconciler.Flags{IgnoreTickets: ignoreTickets, IgnoreMatch: ignoreMatch},
		NotReally: notReally,
		LogLevel:  verbosity,
	}, nil
}
