package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SscSPs/statement_converter/internal/adapters/codec/camt053"
	"github.com/SscSPs/statement_converter/internal/adapters/codec/csvcodec"
	"github.com/SscSPs/statement_converter/internal/adapters/codec/mt940"
	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/ports"
	portsrepo "github.com/SscSPs/statement_converter/internal/core/ports/repositories"
	"github.com/SscSPs/statement_converter/internal/core/services"
	"github.com/SscSPs/statement_converter/internal/handlers"
	"github.com/SscSPs/statement_converter/internal/middleware"
	"github.com/SscSPs/statement_converter/internal/platform/config"
	"github.com/SscSPs/statement_converter/internal/repositories/database/pgsql"
	"github.com/SscSPs/statement_converter/internal/utils"
	"github.com/SscSPs/statement_converter/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	cliRequester    = "cli"
	shutdownTimeout = 10 * time.Second
)

// @title Statement Converter API
// @version 1.0
// @description Converts bank statements between camt.053, MT940 and CSV.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to the serve sub-command or performs a one-shot conversion.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return serve(args[1:], stdout, stderr)
	}
	return convert(args, stdout, stderr)
}

func newCodecs() ports.Codecs {
	return ports.Codecs{
		Document:    camt053.NewCodec(),
		Message:     mt940.NewCodec(),
		Transaction: csvcodec.NewCodec(),
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func addCommonFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Bool("detail-currency-from-statement", false, "report transaction detail amounts in the statement currency instead of EUR")
}

func printError(stderr io.Writer, err error) {
	fmt.Fprintf(stderr, "error [%s]: %v\n", apperrors.Kind(err), err)
}

func convert(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("statement_converter", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: statement_converter --input <path|data> --in-format <fmt> --output <path> --out-format <fmt>")
		fmt.Fprintln(stderr, "       statement_converter serve [--port <port>]")
		fmt.Fprintln(stderr, "formats: camt053, mt940, csv, stdout")
		fs.PrintDefaults()
	}
	input := fs.StringP("input", "i", "", "input file, or the statement itself when --in-format is stdout")
	inFormat := fs.String("in-format", "", "input format")
	output := fs.StringP("output", "o", "", "output file (ignored when --out-format is stdout)")
	outFormat := fs.String("out-format", "", "output format")
	addCommonFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *input == "" || *inFormat == "" || *outFormat == "" {
		fmt.Fprintln(stderr, "--input, --in-format and --out-format are required")
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.LoadConfig(fs)
	if err != nil {
		printError(stderr, err)
		return exitError
	}
	// stdout may carry the converted statement, so the CLI logs to stderr.
	logger := newLogger(stderr, cfg.LogLevel)

	container := services.NewServiceContainer(cfg, newCodecs(), portsrepo.RepositoryProvider{})
	route, err := container.Conversion.ResolveRoute(*inFormat, *outFormat)
	if err != nil {
		printError(stderr, err)
		return exitError
	}
	if !route.ToStdout && *output == "" {
		fmt.Fprintln(stderr, "--output is required unless --out-format is stdout")
		return exitUsage
	}

	var in io.Reader
	if route.InlineInput {
		in = strings.NewReader(*input)
	} else {
		f, err := os.Open(*input)
		if err != nil {
			printError(stderr, fmt.Errorf("%w: open input: %v", apperrors.ErrMalformedInput, err))
			return exitError
		}
		defer f.Close()
		in = f
	}

	var out bytes.Buffer
	result, err := container.Conversion.Convert(context.Background(), route, in, &out, cliRequester)
	if err != nil {
		printError(stderr, err)
		return exitError
	}

	if route.ToStdout {
		_, err = stdout.Write(out.Bytes())
	} else {
		err = os.WriteFile(*output, out.Bytes(), 0o644)
	}
	if err != nil {
		printError(stderr, fmt.Errorf("write output: %w", err))
		return exitError
	}

	logger.Debug("Conversion written",
		slog.String("conversion_id", result.ConversionID),
		slog.Int("entries", result.EntryCount),
	)
	return exitOK
}

func serve(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("statement_converter serve", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("port", "", "HTTP port")
	fs.String("pgsql-url", "", "PostgreSQL URL for conversion history (empty disables history)")
	fs.String("migrations-path", "", "migration source URL")
	fs.String("rate-limit", "", "per-IP rate limit, e.g. 60-M")
	addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.LoadConfig(fs)
	if err != nil {
		printError(stderr, err)
		return exitError
	}
	logger := newLogger(stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos := portsrepo.RepositoryProvider{}
	if cfg.HistoryEnabled() {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			return exitError
		}
		defer database.ClosePgxPool(dbPool)

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			return exitError
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Info("PGSQL_URL not set, conversion history disabled")
	}

	container := services.NewServiceContainer(cfg, newCodecs(), repos)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		return exitError
	}

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return exitError
	}
	handlers.RegisterRoutes(r, cfg, container, rateLimiter, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Service ready", slog.Bool("history_enabled", container.Conversion.HistoryEnabled()), slog.Bool("auth_enabled", cfg.AuthEnabled()))

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return exitError
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", slog.String("error", err.Error()))
			return exitError
		}
	}
	return exitOK
}
