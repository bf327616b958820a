package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// RuleInput is one filter rule of a pick request.
	RuleInput struct {
		Mode    string `json:"mode" jsonschema:"accept or reject; other values are ignored"`
		Pattern string `json:"pattern" jsonschema:"Regular expression matched anywhere in the file path"`
	}

	// PickInput contains parameters for picking a random file.
	PickInput struct {
		Dirs    []string    `json:"dirs" jsonschema:"Root directories to choose files from, walked in order"`
		Subdirs bool        `json:"subdirs,omitempty" jsonschema:"Descend into subdirectories (default: false)"`
		Rules   []RuleInput `json:"rules,omitempty" jsonschema:"Ordered filter rules (default: accept everything)"`
	}

	// PickOutput contains the result of picking a random file.
	PickOutput struct {
		Path       string `json:"path,omitempty"`
		URI        string `json:"uri,omitempty"`
		Candidates int    `json:"candidates"`
		Found      bool   `json:"found"`
	}
)

func registerTools(server *mcp.Server, t *pickTool) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "pick_random_file",
		Description: "Pick one file at random from the given directories. Rules are applied in order: an accept rule drops paths it does not match, a reject rule drops paths it matches. Returns found=false when no file survives.",
	}, t.handlePick)
}
