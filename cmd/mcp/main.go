package main

import (
	"context"
	"flag"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/profile"
	"github.com/sunzid02/portfolio-chat-api/internal/rules"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

var profilePath string

type askArgs struct {
	Question string `json:"question" jsonschema:"question about the portfolio owner"`
}

// Exposes the offline responder as an MCP tool over stdio, so agent
// clients can query the portfolio without the HTTP server running.
func main() {

	logger_i.Init()
	logger := logger_i.NewLogger("mcp")

	flag.StringVar(&profilePath, "profile", config.ProfilePath, "path to the profile yaml")
	flag.Parse()

	p, err := profile.Load(profilePath)
	if err != nil {
		logger.Error("Could not load the profile", "path", profilePath, "error", err)
		os.Exit(1)
	}
	engine := rules.NewEngine(profile.Static(p))

	server := mcp.NewServer(&mcp.Implementation{Name: "portfolio-chat", Version: "1.0.0"}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_portfolio",
		Description: "Answer a question about the portfolio owner from structured profile data",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args askArgs) (*mcp.CallToolResult, any, error) {
		reply := engine.Answer(args.Question)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: reply.Answer}},
		}, nil, nil
	})

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
