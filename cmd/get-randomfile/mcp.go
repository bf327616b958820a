package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/taigrr/get-randomfile/internal/filesystem"
	"github.com/taigrr/get-randomfile/internal/pathfilter"
	"github.com/taigrr/get-randomfile/internal/pick"
	"github.com/taigrr/get-randomfile/internal/search"
	"github.com/taigrr/get-randomfile/internal/types"
	"github.com/taigrr/get-randomfile/internal/uri"
)

var errNoDirs = errors.New("at least one directory is required")

// pickTool serves pick requests. Stdout belongs to the protocol, so it
// never logs.
type pickTool struct {
	fs     afero.Fs
	picker *pick.Picker
}

func (a *app) mcpCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve random file picks over the Model Context Protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "get-randomfile",
				Version: version,
			}, nil)

			registerTools(server, &pickTool{fs: a.fs, picker: pick.New(seed)})

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random picks; 0 picks a fresh seed")

	return cmd
}

func (t *pickTool) handlePick(ctx context.Context, req *mcp.CallToolRequest, input PickInput) (*mcp.CallToolResult, PickOutput, error) {
	output, err := t.pick(input)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, PickOutput{}, err
	}
	return nil, output, nil
}

// pick runs the same pipeline as the command line for one request.
func (t *pickTool) pick(input PickInput) (PickOutput, error) {
	if len(input.Dirs) == 0 {
		return PickOutput{}, errNoDirs
	}

	rules := make([]types.Rule, 0, len(input.Rules))
	for _, r := range input.Rules {
		rules = append(rules, types.Rule{Mode: types.ParseMode(r.Mode), Pattern: r.Pattern})
	}

	chain, err := pathfilter.New(rules)
	if err != nil {
		return PickOutput{}, err
	}

	logger := zerolog.Nop()
	walker := filesystem.New(t.fs, logger)
	found := search.New(walker, chain).Collect(input.Dirs, input.Subdirs)

	path, ok := t.picker.Pick(found)
	if !ok {
		return PickOutput{}, nil
	}

	return PickOutput{
		Path:       path,
		URI:        uri.GenerateFileURI(path),
		Candidates: len(found),
		Found:      true,
	}, nil
}
