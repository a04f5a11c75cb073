package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/batch"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup/logger"
	"github.com/rs/zerolog"
)

func main() {
	startTime := time.Now()

	input := flag.String("input", "", "Input JSONL file relative path, '-' reads stdin")
	output := flag.String("output", "", "Output file relative path, stdout when empty")
	format := flag.String("format", batch.FormatJSONL, "Output file format. Supported formats: 'jsonl', 'summary'")
	workers := flag.Int("workers", 0, "Concurrent solver workers, defaults to WORKERS")
	continueOnError := flag.Bool("continue-on-error", true, "Keep going after a failed puzzle")
	dryRun := flag.Bool("dry-run", false, "Validate input without solving")

	flag.Parse()

	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	log := logger.New(cfg.LogLevel, true)
	if envErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}
	formatValidator(&log, *format)
	if *workers <= 0 {
		*workers = cfg.Workers
	}

	ctx, cancel := setupGracefulShutdown(&log)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	// Open input file
	var inputFile io.Reader
	if *input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", *input).Msg("Reading input file")
	}

	// Read records
	reader := batch.NewReader(inputFile, deps.Logger)
	var records []batch.InputRecord
	for record := range reader.ReadAll(ctx) {
		records = append(records, record)
	}

	log.Info().Int("total", len(records)).Msg("Input file parsed")

	// Dry run validation
	if *dryRun {
		if !dryRunValidate(&log, records) {
			deps.Close()
			os.Exit(1)
		}
		return
	}

	// Open output file
	var outputFile io.Writer
	if *output == "" {
		outputFile = os.Stdout
		log.Info().Msg("Writing to stdout")
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		outputFile = f
		log.Info().Str("file", *output).Msg("Writing to output file")
	}

	// Create writer
	writer, err := batch.NewWriter(outputFile, *format, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create writer")
	}

	// Process with worker pool
	processor := batch.NewProcessor(deps.Executor, *workers, deps.Logger)
	results := processor.Process(ctx, records)

	successCount := 0
	errorCount := 0

	for result := range results {
		if err := writer.Write(result); err != nil {
			log.Error().Err(err).Str("id", result.ID).Msg("Failed to write result")
			errorCount++
		} else if !result.OK() {
			log.Warn().Str("id", result.ID).Str("status", string(result.Status)).Msg(result.Error)
			errorCount++
		} else {
			successCount++
		}

		if errorCount > 0 && !*continueOnError {
			log.Error().Msg("Stopping on first failure")
			cancel()
			break
		}
	}
	// Drain so the worker goroutines can exit
	for range results {
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to flush output")
		errorCount++
	}

	log.Info().
		Int("success", successCount).
		Int("errors", errorCount).
		Dur("duration", time.Since(startTime)).
		Msg("Batch processing complete")

	if errorCount > 0 && !*continueOnError {
		deps.Close()
		os.Exit(1)
	}
}

func setupGracefulShutdown(log *zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current work...")
		cancel()
	}()

	return ctx, cancel
}

func formatValidator(log *zerolog.Logger, format string) {
	validFormats := map[string]bool{batch.FormatJSONL: true, batch.FormatSummary: true}
	if !validFormats[format] {
		log.Fatal().
			Str("format", format).
			Msg("Invalid format. Supported: jsonl, summary")
	}
}

func dryRunValidate(log *zerolog.Logger, records []batch.InputRecord) bool {
	errorCount := 0
	for _, record := range records {
		if record.Error != nil {
			log.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Validation error")
			errorCount++
		}
	}

	if errorCount > 0 {
		log.Error().Int("errors", errorCount).Msg("Validation failed")
		return false
	}

	log.Info().Msg("Validation successful")
	return true
}
