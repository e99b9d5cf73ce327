// Command server is the main entry point for the Employee Manager MCP server
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/config"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/manager"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/render"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/resources"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/leave"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/work"
	"github.com/slack-go/slack"
)

const (
	notifyQueueSize = 64
	notifyTimeout   = 10 * time.Second
)

func main() {
	transport := flag.String("transport", "", "transport to serve on (stdio or sse), overrides config")
	format := flag.String("format", "openai", "tool catalog format (openai or anthropic)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [serve|catalog]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *transport != "" {
		cfg.Server.Transport = *transport
	}

	// stdout belongs to the stdio transport, so logs go to stderr
	logger := cfg.NewLogger(os.Stderr)
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
	)

	registry, notifier := build(cfg, mcpServer)

	switch command := flag.Arg(0); command {
	case "", "serve":
		err := serve(cfg, mcpServer, logger)
		drain(notifier)
		if err != nil {
			log.Fatal("Server error", "error", err)
		}
	case "catalog":
		if err := writeCatalog(registry, *format); err != nil {
			log.Fatal("Could not write tool catalog", "error", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// build wires the stores, command layer, tools and resources onto the server.
func build(cfg *config.Config, mcpServer *server.MCPServer) (*tools.Registry, notify.Notifier) {
	mgr := manager.New(
		records.NewLeaveStore(records.DefaultLeaveRecords()),
		records.NewTaskStore(records.DefaultTaskRecords()),
	)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Slack.BotToken != "" {
		notifier = notify.NewQueue(
			notify.NewSlack(
				cfg.Slack.BotToken,
				cfg.Slack.ChannelID,
				slack.OptionHTTPClient(&http.Client{Timeout: notifyTimeout}),
			),
			notifyQueueSize,
			notifyTimeout,
		)
		log.Info("Slack notifications enabled", "channel", cfg.Slack.ChannelID)
	}

	registry := tools.NewRegistry(mcpServer)
	registry.Register(leave.RegisterLeaveTools(
		mgr,
		render.NewTextBars(cfg.Chart.Cap),
		render.NewChart(cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.Cap),
		notifier,
	)...)
	registry.Register(work.RegisterWorkTools(mgr, notifier)...)

	resources.Register(mcpServer, mgr)

	return registry, notifier
}

// drain waits for queued announcements before the process exits.
func drain(notifier notify.Notifier) {
	queue, ok := notifier.(*notify.Queue)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := queue.Close(ctx); err != nil {
		log.Warn("Dropped pending notifications", "error", err)
	}
}

func serve(cfg *config.Config, mcpServer *server.MCPServer, logger *log.Logger) error {
	if cfg.Server.Transport == config.TransportSSE {
		return serveSSE(cfg, mcpServer)
	}

	log.Info("Serving on stdio", "name", cfg.Server.Name, "version", cfg.Server.Version)

	return server.ServeStdio(mcpServer,
		server.WithErrorLogger(logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})),
	)
}

func serveSSE(cfg *config.Config, mcpServer *server.MCPServer) error {
	sseServer := server.NewSSEServer(mcpServer, server.WithBaseURL(cfg.Server.BaseURL))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Serving on SSE", "address", cfg.Server.Address, "base_url", cfg.Server.BaseURL)
		errCh <- sseServer.Start(cfg.Server.Address)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return sseServer.Shutdown(shutdownCtx)
}

// writeCatalog prints every tool as an OpenAI function or Anthropic tool
// definition.
func writeCatalog(registry *tools.Registry, format string) error {
	var catalog any

	switch format {
	case "openai":
		catalog = registry.OpenAITools()
	case "anthropic":
		catalog = registry.AnthropicTools()
	default:
		return fmt.Errorf("unknown catalog format %q", format)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(catalog)
}
