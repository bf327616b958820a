package types

import "github.com/rs/zerolog"

type (
	// Options is the immutable run configuration built from the command line.
	Options struct {
		// Dirs are the root directories, processed in order. Never empty.
		Dirs []string
		// Subdirs enables recursive descent below each root.
		Subdirs bool
		// Rules is the ordered filter chain. Never empty.
		Rules []Rule
		// Verbose enables diagnostic output.
		Verbose bool
		// Seed fixes the random source when non-zero.
		Seed int64
		// Logger receives diagnostics. It is disabled unless Verbose is set.
		Logger zerolog.Logger
	}
)
