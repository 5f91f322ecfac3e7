package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/internal/mcp"
	"github.com/shivavenkatesh/threadsplit/internal/server"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP API so other tools can split and validate threads.

Examples:
  threadsplit serve
  threadsplit serve --port 8080
  THREADSPLIT_SERVER_HOST=0.0.0.0 threadsplit serve`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, err := initService(nil)
	if err != nil {
		return err
	}

	log := logger.GetDefault()
	srv := server.New(svc, server.Config{
		Host:    cfg.Server.Host,
		Port:    cfg.Server.Port,
		Timeout: cfg.Server.Timeout,
	}, log)

	// Handle graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-done
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "threadsplit listening on http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Fprintln(out, "Endpoints:")
	fmt.Fprintln(out, "  POST /split     - Split text into a thread")
	fmt.Fprintln(out, "  POST /stats     - Thread statistics")
	fmt.Fprintln(out, "  POST /export    - Join a thread for copying")
	fmt.Fprintln(out, "  POST /validate  - Check a thread before posting")
	fmt.Fprintln(out, "  GET  /health    - Health check")

	return srv.Start()
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
split_thread and validate_thread tools.

Logs go to stderr so they do not corrupt the protocol stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService(nil)
		if err != nil {
			return err
		}
		return mcp.NewServer(svc).Serve(cmd.Context())
	},
}
