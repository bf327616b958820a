// Package search collects the files that survive the filter chain across
// every root directory.
package search

import (
	"github.com/taigrr/get-randomfile/internal/filesystem"
	"github.com/taigrr/get-randomfile/internal/pathfilter"
)

// Service gathers accepted candidate paths.
type Service struct {
	walker *filesystem.Walker
	chain  *pathfilter.Chain
}

// New creates a new search Service.
func New(walker *filesystem.Walker, chain *pathfilter.Chain) *Service {
	return &Service{
		walker: walker,
		chain:  chain,
	}
}

// Collect walks roots in the given order and returns every accepted path.
// A root listed twice contributes its files twice.
func (s *Service) Collect(roots []string, recurse bool) []string {
	var found []string
	for _, root := range roots {
		for path := range s.walker.Walk(root, recurse) {
			if s.chain.IsAllowed(path) {
				found = append(found, path)
			}
		}
	}
	return found
}
