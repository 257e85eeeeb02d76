// Package server wires the chart tools into an MCP server.
//
// The server exposes seven chart-generation tools over the Model Context
// Protocol, on either a stdio duplex channel or a streamable-HTTP endpoint.
// Each tool call is validated, rendered to PNG, and finalized by the
// configured render.Finalizer: image mode returns the PNG inline as base64
// content, file mode saves it to disk and opens the platform viewer.
//
// Finished PNGs can be memoized in a cache.Cache keyed by tool name and
// argument hash, so repeated identical calls skip rendering entirely.
package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/plotforge/plotforge/pkg/buildinfo"
	"github.com/plotforge/plotforge/pkg/cache"
	"github.com/plotforge/plotforge/pkg/errors"
	"github.com/plotforge/plotforge/pkg/render"
)

const serverName = "plotforge"

// Options configures a Server.
type Options struct {
	// Finalizer turns rendered PNG bytes into the tool result. Defaults to
	// render.Encoder (inline image content).
	Finalizer render.Finalizer

	// Cache memoizes finished PNGs. Defaults to cache.NewNullCache().
	Cache cache.Cache

	// CacheTTL bounds the lifetime of cached artifacts. Non-positive means
	// no expiration.
	CacheTTL time.Duration

	// Logger receives per-call structured logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server hosts the chart tools on an MCP dispatcher.
type Server struct {
	mcp       *mcpserver.MCPServer
	finalizer render.Finalizer
	cache     cache.Cache
	cacheTTL  time.Duration
	logger    *log.Logger
}

// New creates a Server with all seven chart tools registered.
func New(opts Options) *Server {
	if opts.Finalizer == nil {
		opts.Finalizer = render.Encoder{}
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		finalizer: opts.Finalizer,
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		logger:    opts.Logger,
	}

	s.mcp = mcpserver.NewMCPServer(
		serverName,
		buildinfo.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithToolHandlerMiddleware(s.callLogging),
	)
	s.registerTools()

	return s
}

// ServeStdio runs the server on stdin/stdout until ctx is canceled or the
// input stream closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger.StandardLog())
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// Handler returns the HTTP surface: the MCP streamable-HTTP transport
// mounted at /mcp plus a /healthz liveness endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/mcp", mcpserver.NewStreamableHTTPServer(s.mcp))
	return r
}

// ListenHTTP serves Handler on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenHTTP(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// callLogging is tool-handler middleware: it tags each call with a UUID and
// logs start, outcome, and elapsed time.
func (s *Server) callLogging(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		l := s.logger.With("call", uuid.NewString(), "tool", req.Params.Name)
		l.Debug("tool call started")
		start := time.Now()

		res, err := next(ctx, req)

		elapsed := time.Since(start).Round(time.Millisecond)
		switch {
		case err != nil:
			l.Error("tool call failed", "err", err, "elapsed", elapsed)
		case res != nil && res.IsError:
			l.Warn("tool call rejected", "elapsed", elapsed)
		default:
			l.Info("tool call finished", "elapsed", elapsed)
		}
		return res, err
	}
}

// run executes one tool call: cache lookup, figure build, finalize, cache
// store. kind names the artifact (used for filenames), label names the chart
// in user-facing error text.
func (s *Server) run(ctx context.Context, tool, kind, label string, args any, build func() ([]byte, error)) (*mcp.CallToolResult, error) {
	key := cache.ArtifactKey(tool, args)

	png, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", "tool", tool, "err", err)
		hit = false
	}

	if !hit {
		png, err = build()
		if err != nil {
			return s.toolError(label, err), nil
		}
		if err := s.cache.Set(ctx, key, png, s.cacheTTL); err != nil {
			s.logger.Warn("cache set failed", "tool", tool, "err", err)
		}
	}

	out, err := s.finalizer.Finalize(ctx, kind, png)
	if err != nil {
		return s.toolError(label, err), nil
	}

	if out.Path != "" {
		return mcp.NewToolResultText(fmt.Sprintf("Plot saved to: %s and displayed", out.Path)), nil
	}
	encoded := base64.StdEncoding.EncodeToString(out.PNG)
	return mcp.NewToolResultImage(label, encoded, "image/png"), nil
}

// toolError converts a handler failure into a protocol-level tool error with
// the canonical "Error creating <chart>: <message>" text.
func (s *Server) toolError(label string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error creating %s: %s", label, errors.UserMessage(err)))
}
