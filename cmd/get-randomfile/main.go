// Package main implements get-randomfile, which prints one file chosen at
// random from a set of directories.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/taigrr/get-randomfile/internal/filesystem"
	"github.com/taigrr/get-randomfile/internal/options"
	"github.com/taigrr/get-randomfile/internal/pathfilter"
	"github.com/taigrr/get-randomfile/internal/pick"
	"github.com/taigrr/get-randomfile/internal/search"
	"github.com/taigrr/get-randomfile/internal/types"
)

// app carries what a single invocation needs besides its flags.
type app struct {
	fs       afero.Fs
	exitCode int
}

func main() {
	a := &app{fs: afero.NewOsFs()}
	cmd := a.rootCmd()
	cmd.SetOut(os.Stdout)

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
	os.Exit(a.exitCode)
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-randomfile",
		Short: "Print one file chosen at random from a set of directories",
		Long: `Usage: get-randomfile -d DIR [-d DIR]... [-s] [-i REGEXP]... [-x REGEXP]... [-v]

get-randomfile walks the given directories, runs every file path
through the accept (-i) and reject (-x) regular expressions in the
order they were given, and prints one surviving path chosen uniformly
at random. It prints "no-files" when nothing survives.`,
		Example: `get-randomfile -d ~/Music -s -i '\.mp3$' -x '/podcasts/'`,
		Args:    cobra.ArbitraryArgs,
		// Usage is printed by hand when no directory is given.
		SilenceUsage: true,
	}
	flags := options.Register(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		opts, err := flags.Options(out)
		if errors.Is(err, options.ErrNoDirectories) {
			a.exitCode = 1
			return printUsage(cmd, out)
		}
		if err != nil {
			return err
		}

		return run(opts, a.fs, out)
	}

	cmd.AddCommand(a.mcpCmd())

	return cmd
}

func printUsage(cmd *cobra.Command, out io.Writer) error {
	if err := cmd.Help(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%s\n", options.OrderNote)
	return err
}

// run executes one pick: compile the rules, report them, collect every
// accepted file below the roots and print one of them.
func run(opts types.Options, fsys afero.Fs, out io.Writer) error {
	chain, err := pathfilter.New(opts.Rules)
	if err != nil {
		return err
	}

	for _, rule := range chain.Rules() {
		opts.Logger.Debug().Msg(rule.String())
	}

	walker := filesystem.New(fsys, opts.Logger)
	found := search.New(walker, chain).Collect(opts.Dirs, opts.Subdirs)

	return pick.Report(out, opts.Logger, found, pick.New(opts.Seed))
}
