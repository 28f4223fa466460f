// Command server exposes the text normalizer over a small fasthttp JSON API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_japanese_text/internal/adapters/normalizer"
	"github.com/baditaflorin/go_japanese_text/internal/core/domain"
	"github.com/baditaflorin/go_japanese_text/pkg/analyzer"
	"github.com/baditaflorin/go_japanese_text/pkg/pipeline"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

var (
	// Pre-built default pipeline, warmed at startup.
	defaultPipeline *pipeline.Pipeline

	// Script-composition analyzer.
	scriptAnalyzer *analyzer.Analyzer

	// Logger instance.
	logger l.Logger
)

// stepTypes maps wire names to the built-in steps.
var stepTypes = map[string]normalizer.StepType{
	"half_width":      normalizer.HalfWidthStep,
	"full_width":      normalizer.FullWidthStep,
	"hiragana":        normalizer.HiraganaStep,
	"katakana":        normalizer.KatakanaStep,
	"kana_fold":       normalizer.KanaFoldStep,
	"prolonged_sound": normalizer.ProlongedSoundStep,
	"iteration_marks": normalizer.IterationMarkStep,
	"whitespace":      normalizer.WhitespaceStep,
	"nfkc_fold":       normalizer.NFKCFoldStep,
	"narrow_fold":     normalizer.NarrowFoldStep,
	"widen_fold":      normalizer.WidenFoldStep,
}

// NormalizeRequest represents a normalization request.
type NormalizeRequest struct {
	Text string `json:"text"`
	// Steps optionally overrides the default step order.
	Steps []string `json:"steps,omitempty"`
}

// NormalizeResponse represents a normalization response.
type NormalizeResponse struct {
	Input   string                 `json:"input"`
	Output  string                 `json:"output"`
	Steps   []string               `json:"steps"`
	Before  CountsPayload          `json:"before"`
	After   CountsPayload          `json:"after"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// AnalyzeRequest represents an analysis request.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse represents an analysis response.
type AnalyzeResponse struct {
	Counts   CountsPayload `json:"counts"`
	Total    int           `json:"total"`
	Dominant string        `json:"dominant,omitempty"`
}

// CountsPayload is the wire form of a character-type tally.
type CountsPayload struct {
	Hiragana          int `json:"hiragana"`
	Katakana          int `json:"katakana"`
	HalfWidthKatakana int `json:"half_width_katakana"`
	Kanji             int `json:"kanji"`
	ASCII             int `json:"ascii"`
	FullWidth         int `json:"full_width"`
	Other             int `json:"other"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting normalizer HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	initComponents(*warmUp)

	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initComponents initializes the default pipeline and the analyzer.
func initComponents(warmUp bool) {
	var err error

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithPooledKanaFold(),
		pipeline.WithSteps(normalizer.ProlongedSoundStep, normalizer.IterationMarkStep),
		pipeline.WithOptimizedWhitespace(),
	}
	if warmUp {
		opts = append(opts, pipeline.WithWarmUp(true))
	}

	defaultPipeline, err = pipeline.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize pipeline", "error", err)
		os.Exit(1)
	}

	scriptAnalyzer, err = analyzer.New(analyzer.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize analyzer", "error", err)
		os.Exit(1)
	}

	logger.Info("Components initialized",
		"warm_up", warmUp,
		"cpus", runtime.NumCPU(),
	)
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "NormalizerServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/normalize":
		handleNormalize(ctx)
	case "/analyze":
		handleAnalyze(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests.
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleNormalize handles normalization requests.
func handleNormalize(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req NormalizeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	p := defaultPipeline
	if len(req.Steps) > 0 {
		types := make([]normalizer.StepType, 0, len(req.Steps))
		for _, name := range req.Steps {
			t, ok := stepTypes[name]
			if !ok {
				ctx.SetStatusCode(fasthttp.StatusBadRequest)
				writeJSONError(ctx, "Unknown step: "+name)
				return
			}
			types = append(types, t)
		}

		var err error
		p, err = pipeline.New(
			pipeline.WithLogger(logger),
			pipeline.WithSteps(types...),
		)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			writeJSONError(ctx, "Failed to build pipeline")
			return
		}
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := p.Normalize(c, req.Text)

	response := NormalizeResponse{
		Input:   result.Input,
		Output:  result.Output,
		Steps:   result.Steps,
		Before:  countsPayload(result.Before),
		After:   countsPayload(result.After),
		Details: result.Details,
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// handleAnalyze handles script-composition analysis requests.
func handleAnalyze(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := scriptAnalyzer.Analyze(c, req.Text)

	response := AnalyzeResponse{
		Counts:   countsPayload(result.Counts),
		Total:    result.Total,
		Dominant: result.Dominant,
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// Helper functions

// countsPayload converts a tally to its wire form.
func countsPayload(ct domain.CharacterTypes) CountsPayload {
	return CountsPayload{
		Hiragana:          ct.Hiragana,
		Katakana:          ct.Katakana,
		HalfWidthKatakana: ct.HalfWidthKatakana,
		Kanji:             ct.Kanji,
		ASCII:             ct.ASCII,
		FullWidth:         ct.FullWidth,
		Other:             ct.Other,
	}
}

// writeJSONResponse writes a JSON response to the context.
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context.
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{Error: message}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger.
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
