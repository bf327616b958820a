// Package pick draws one path uniformly at random from a result set.
package pick

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"
)

// NoFiles is printed when the result set is empty.
const NoFiles = "no-files"

// Picker selects paths uniformly at random. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Picker. A zero seed draws the seed from the runtime's
// random source; any other seed makes every pick sequence reproducible.
func New(seed int64) *Picker {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(uint64(seed), uint64(seed))
	}
	return &Picker{rng: rand.New(src)}
}

// Pick returns one element of paths chosen uniformly by index, so a path
// present twice is twice as likely. ok is false when paths is empty.
func (p *Picker) Pick(paths []string) (path string, ok bool) {
	if len(paths) == 0 {
		return "", false
	}

	p.mu.Lock()
	i := p.rng.IntN(len(paths))
	p.mu.Unlock()

	return paths[i], true
}

// Report logs every found path, then prints the picked path, or NoFiles,
// on its own line.
func Report(w io.Writer, logger zerolog.Logger, paths []string, p *Picker) error {
	path, ok := p.Pick(paths)
	if !ok {
		_, err := fmt.Fprintln(w, NoFiles)
		return err
	}

	for _, found := range paths {
		logger.Debug().Msgf("Found file: %s", found)
	}

	_, err := fmt.Fprintln(w, path)
	return err
}
