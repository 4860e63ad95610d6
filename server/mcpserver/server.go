package mcpserver

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mattermost/msteams-mcp-server/server/tools"
)

const (
	serverName   = "msteams-mcp-server"
	endpointPath = "/mcp"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, name string, raw map[string]any) *mcplib.CallToolResult
}

type Metrics interface {
	IncrementHTTPRequests()
	IncrementHTTPErrors()
	ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64)
	Handler() http.Handler
}

// Server exposes the tool registry over MCP. Every tool call goes to the dispatcher.
type Server struct {
	mcp        *mcpsrv.MCPServer
	dispatcher Dispatcher
	logger     logrus.FieldLogger
	metrics    Metrics
	monitor    *Monitor
}

func New(dispatcher Dispatcher, version string, logger logrus.FieldLogger, metrics Metrics, monitor *Monitor) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Server{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		monitor:    monitor,
	}

	s.mcp = mcpsrv.NewMCPServer(
		serverName,
		version,
		mcpsrv.WithToolCapabilities(false),
		mcpsrv.WithInstructions(instructions),
	)

	for _, d := range tools.Descriptors() {
		s.mcp.AddTool(d.MCPTool(), s.handleTool)
	}

	return s
}

const instructions = `You are connected to a Microsoft Teams MCP server.

The tools read and write channels, channel messages, chats, online meetings, channel files,
presence and team membership on behalf of the configured account. Identifiers (team, channel,
chat, message, file and membership ids) come from the list tools. Membership ids are not user
ids. Downloaded file content is base64-encoded.`

func (s *Server) handleTool(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return s.dispatcher.Dispatch(ctx, req.Params.Name, req.GetArguments()), nil
}

// ServeStdio runs the server over stdin and stdout until ctx is cancelled or the input ends.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.Info("MCP server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return errors.Wrap(err, "mcp stdio server failed")
	}
	return nil
}

// Router serves the Streamable HTTP endpoint next to /metrics and /healthz.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.metricsMiddleware(router))

	stream := mcpsrv.NewStreamableHTTPServer(s.mcp, mcpsrv.WithEndpointPath(endpointPath))
	router.Handle(endpointPath, stream).Methods(http.MethodGet, http.MethodPost, http.MethodDelete)

	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	if s.monitor != nil {
		router.Handle("/healthz", s.monitor).Methods(http.MethodGet)
	}

	return router
}

// ServeHTTP listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if s.monitor != nil {
		s.monitor.Start()
		defer s.monitor.Stop()
	}

	s.logger.WithField("addr", addr).Info("MCP server listening on http")

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- errors.Wrap(err, "mcp http server failed")
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "mcp http server shutdown failed")
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// Serve runs the selected transport.
func (s *Server) Serve(ctx context.Context, transport Transport, addr string) error {
	switch transport {
	case TransportStdio:
		return s.ServeStdio(ctx)
	case TransportHTTP:
		return s.ServeHTTP(ctx, addr)
	default:
		return errors.Errorf("unsupported transport %q", transport)
	}
}
