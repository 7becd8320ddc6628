// Command dawg compiles sorted word lists into binary DAWG dictionaries,
// decompiles them back into word lists, and prints graph statistics.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	dawg "github.com/stewartbrodie/zyzzyva-dawg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dawg:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dawg",
		Short:         "compile and inspect DAWG dictionaries",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Anything that is not a recognised subcommand prints the
		// usage banner to stderr and exits 0.
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return nil
		},
	}

	root.AddCommand(newCreateCmd(), newDumpCmd(), newInfoCmd())
	return root
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <input-text | -> <output-dawg>",
		Short: "compile a sorted word list into a DAWG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			g, err := dawg.Compile(in)
			if err != nil {
				return err
			}
			_, err = g.Save(args[1])
			return err
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <input-dawg> <output-text>",
		Short: "decompile a DAWG back into its word list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := dawg.Load(args[0])
			if err != nil {
				return err
			}
			// If the output file cannot be opened, fall back to
			// standard output.
			out := io.Writer(os.Stdout)
			if f, err := os.Create(args[1]); err == nil {
				defer f.Close()
				out = f
			}
			err = g.Dump(out)
			if errors.Is(err, dawg.ErrCorruptGraph) {
				// Diagnose and exit 0; the words already
				// written stay written.
				fmt.Fprintln(cmd.ErrOrStderr(), "dawg:", err)
				return nil
			}
			return err
		},
	}
}

func newInfoCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "info <input-dawg>",
		Short: "print statistics about a DAWG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := dawg.Load(args[0])
			if err != nil {
				return err
			}
			words, werr := g.WordCount()
			fmt.Fprintf(cmd.OutOrStdout(), "edges:       %d\n", g.NumEdges())
			fmt.Fprintf(cmd.OutOrStdout(), "words:       %d\n", words)
			fmt.Fprintf(cmd.OutOrStdout(), "root fanout: %d\n", g.RootFanout())
			if verbose {
				g.PrintTo(cmd.OutOrStdout())
			}
			if errors.Is(werr, dawg.ErrCorruptGraph) {
				fmt.Fprintln(cmd.ErrOrStderr(), "dawg:", werr)
				return nil
			}
			return werr
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every edge")
	return cmd
}
