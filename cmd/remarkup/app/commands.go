package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/addaleax/remarkup"
	"github.com/addaleax/remarkup/internal/cmd/globals"
	"github.com/addaleax/remarkup/internal/cmd/output"
	"github.com/addaleax/remarkup/pkg/errors"
)

// NewUnmarkCommand creates the unmark command with app dependencies.
func (a *App) NewUnmarkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unmark [file]",
		GroupID: "core",
		Short:   "Strip attributes from an HTML fragment",
		Long: `Unmark strips attributes from an HTML fragment so the markup can be
edited without attribute noise. Identity attributes (id, translate-id,
remarkup-id), translate-*/remarkup-* attributes, and attributes kept by
the active profile survive.

The fragment is read from the given file, or from stdin when no file
is given.`,
		Example: `  remarkup unmark page.html                 # Strip page.html to stdout
  cat page.html | remarkup unmark           # Same, reading stdin
  remarkup unmark page.html -w plain.html   # Write the result to plain.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			rm, err := a.Remarkup()
			if err != nil {
				return err
			}

			result, err := rm.Unmark(markup)
			if err != nil {
				return err
			}

			return writeResult(cmd, result)
		},
	}
	cmd.Flags().StringP("write", "w", "", "write the result to this file instead of stdout")
	return cmd
}

// NewRemarkCommand creates the remark command with app dependencies.
func (a *App) NewRemarkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remark <original> <edited>",
		GroupID: "core",
		Short:   "Re-attach original attributes to an edited fragment",
		Long: `Remark reconciles an edited HTML fragment against the original it was
derived from. Every element of the edited fragment is matched to the
original element it most likely descends from, and the original's
attributes are copied back onto it. Attribute values the edit
legitimately changed (semantic attributes such as alt text) are left
alone.`,
		Example: `  remarkup remark original.html edited.html               # Reconcile to stdout
  remarkup remark original.html edited.html -w final.html  # Write to final.html
  remarkup remark --profile rules.yaml original.html edited.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := readFile(args[0])
			if err != nil {
				return err
			}
			edited, err := readFile(args[1])
			if err != nil {
				return err
			}

			rm, err := a.Remarkup()
			if err != nil {
				return err
			}

			result, err := rm.Remark(cmd.Context(), original, edited)
			if err != nil {
				return err
			}

			return writeResult(cmd, result)
		},
	}
	cmd.Flags().StringP("write", "w", "", "write the result to this file instead of stdout")
	return cmd
}

// NewInspectCommand creates the inspect command with app dependencies.
func (a *App) NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <original> <edited>",
		Short: "Show how elements of two fragments are matched",
		Long: `Inspect prints the element assignment remark would use for the given
fragment pair, one row per matched element, together with the alignment
cost that produced the match. Lower costs mean more confident matches;
a cost of zero means the elements share an identity attribute.`,
		Example: `  remarkup inspect original.html edited.html            # Table on a TTY
  remarkup inspect original.html edited.html -o json    # Machine-readable
  remarkup inspect original.html edited.html -o yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := readFile(args[0])
			if err != nil {
				return err
			}
			edited, err := readFile(args[1])
			if err != nil {
				return err
			}

			rm, err := a.Remarkup()
			if err != nil {
				return err
			}

			alignments, err := rm.Alignments(cmd.Context(), original, edited)
			if err != nil {
				return err
			}

			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}
			if !globalFlags.Quiet {
				fmt.Fprintf(os.Stderr, "Matched %d element pairs\n", len(alignments))
			}

			format := output.DetectFormat(globalFlags.Format)
			formatter := output.NewFormatter(format)

			var data any
			switch format {
			case output.FormatTable, output.FormatWide:
				data = alignmentTableData(alignments)
			default:
				data = alignments
			}
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("remarkup %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// alignmentTableData converts alignments to rows for table rendering.
func alignmentTableData(alignments []remarkup.Alignment) output.Data {
	rows := make([][]string, 0, len(alignments))
	for _, al := range alignments {
		rows = append(rows, []string{
			strconv.Itoa(al.OriginalIndex),
			al.OriginalTag,
			strconv.Itoa(al.EditedIndex),
			al.EditedTag,
			strconv.FormatFloat(al.Cost, 'f', 2, 64),
		})
	}
	return output.Data{
		Headers: []string{"Original #", "Original", "Edited #", "Edited", "Cost"},
		Rows:    rows,
		ColumnAlignment: []output.Align{
			output.AlignRight,
			output.AlignLeft,
			output.AlignRight,
			output.AlignLeft,
			output.AlignRight,
		},
	}
}

// readInput reads the fragment from the file named in args, or from stdin
// when no file argument was given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return readFile(args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.WrapIO("read", "stdin", err)
	}
	return string(data), nil
}

// readFile reads one fragment file.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}

// writeResult writes the reconciled or stripped markup to the --write
// target when set, or to stdout. File writes keep the exact bytes so the
// output can feed straight back into another remarkup invocation.
func writeResult(cmd *cobra.Command, result string) error {
	path, err := cmd.Flags().GetString("write")
	if err != nil {
		return err
	}
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	}
	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
