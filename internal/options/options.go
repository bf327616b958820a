// Package options turns command-line flags into a run configuration.
package options

import (
	"io"

	"github.com/spf13/pflag"
	"github.com/taigrr/get-randomfile/internal/logging"
	"github.com/taigrr/get-randomfile/internal/types"
)

// Flags holds the raw flag values of one command line.
type Flags struct {
	dirs    []string
	subdirs bool
	rules   []types.Rule
	verbose bool
	seed    int64
}

// ruleValue appends a rule of a fixed mode to a shared list, so include
// and exclude flags keep their relative command-line order.
type ruleValue struct {
	mode  types.Mode
	rules *[]types.Rule
}

func (v *ruleValue) Set(pattern string) error {
	*v.rules = append(*v.rules, types.Rule{Mode: v.mode, Pattern: pattern})
	return nil
}

func (v *ruleValue) String() string { return "" }

func (v *ruleValue) Type() string { return "regexp" }

// dirValue appends root directories without splitting on commas.
type dirValue struct {
	dirs *[]string
}

func (v *dirValue) Set(dir string) error {
	*v.dirs = append(*v.dirs, dir)
	return nil
}

func (v *dirValue) String() string { return "" }

func (v *dirValue) Type() string { return "directory" }

// Register defines the flags on fs and returns their holder.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&dirValue{dirs: &f.dirs}, "dir", "d",
		"Specify the directory for files to be chosen from (can be specified multiple times)")
	fs.BoolVarP(&f.subdirs, "subdirs", "s", false,
		"Include subdirectories")
	fs.VarP(&ruleValue{mode: types.ModeAccept, rules: &f.rules}, "include", "i",
		"Accept filter, regular expression (defaults to '.*' if no filter is given)")
	fs.VarP(&ruleValue{mode: types.ModeReject, rules: &f.rules}, "exclude", "x",
		"Reject filter, regular expression")
	fs.BoolVarP(&f.verbose, "verbose", "v", false,
		"Enable verbose output (for debugging)")
	fs.Int64Var(&f.seed, "seed", 0,
		"Seed for the random pick; 0 picks a fresh seed each run")

	return f
}

// Options validates the parsed flags and builds the run configuration.
// Diagnostics go to w when verbose is set. It returns ErrNoDirectories
// when no directory was given.
func (f *Flags) Options(w io.Writer) (types.Options, error) {
	if len(f.dirs) == 0 {
		return types.Options{}, ErrNoDirectories
	}

	rules := append([]types.Rule(nil), f.rules...)
	if len(rules) == 0 {
		rules = []types.Rule{types.DefaultRule()}
	}

	opts := types.Options{
		Dirs:    append([]string(nil), f.dirs...),
		Subdirs: f.subdirs,
		Rules:   rules,
		Verbose: f.verbose,
		Seed:    f.seed,
	}
	opts.Logger = logging.New(w, opts.Verbose)

	return opts, nil
}
