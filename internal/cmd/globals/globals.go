// Package globals defines the flags every remarkup command shares and
// helpers for reading them back from the command tree.
package globals

import "github.com/spf13/cobra"

// Flags carries the values of the persistent root-command flags.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags registers the shared flags on the root command and returns the
// struct they are bound to.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	pf := cmd.PersistentFlags()

	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Minimal output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	pf.StringVarP(&flags.Format, "format", "o", "",
		"Output format: one of table, json, yaml, wide")
	// --output stays as a hidden alias for --format
	pf.StringVar(&flags.Format, "output", "", "")
	_ = pf.MarkHidden("output")

	return flags
}

// Parse reads the shared flag values back off the root of cmd's command
// tree, for handlers that were not handed the Flags struct directly.
func Parse(cmd *cobra.Command) (*Flags, error) {
	pf := cmd.Root().PersistentFlags()

	format, err := pf.GetString("format")
	if err != nil {
		return nil, err
	}
	quiet, err := pf.GetBool("quiet")
	if err != nil {
		return nil, err
	}
	verbose, err := pf.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	noColor, err := pf.GetBool("no-color")
	if err != nil {
		return nil, err
	}

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}, nil
}
