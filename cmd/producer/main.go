package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	red "github.com/povarna/generative-ai-agents/aoc-solver/internal/redis"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/stream/redis"
	"github.com/rs/zerolog"
)

func main() {
	data := flag.String("d", "", "Inline JSON SolveRequest")
	day := flag.Int("day", 0, "Puzzle day, used when -d is empty")
	part := flag.Int("part", 0, "Puzzle part, used when -d is empty")
	variant := flag.String("variant", "", "Solution variant, used when -d is empty")
	puzzleKey := flag.String("puzzle", "", "Puzzle key such as 3/2/geometric, overrides -day, -part and -variant")
	inputFile := flag.String("inputFile", "", "Puzzle input file, used when -d is empty")
	stream := flag.String("stream", redis.DefaultRequestStream, "Stream name")
	flag.Parse()

	log := logger.New(os.Getenv("LOG_LEVEL"), true)

	req, err := buildRequest(*data, *puzzleKey, puzzle.Key{Day: *day, Part: *part, Variant: *variant}, *inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer -day N -part M -inputFile input.txt | producer -puzzle N/M[/variant] -inputFile input.txt")
		flag.PrintDefaults()
		log.Error().Err(err).Msg("invalid request")
		os.Exit(1)
	}

	if err := run(&log, req, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

// buildRequest decodes -d when set. Otherwise the puzzle comes from
// puzzleKey, falling back to key, and the input from inputFile.
func buildRequest(data, puzzleKey string, key puzzle.Key, inputFile string) (models.SolveRequest, error) {
	var req models.SolveRequest

	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return req, fmt.Errorf("failed to decode -d: %w", err)
		}
		return req, nil
	}

	if puzzleKey != "" {
		parsed, err := puzzle.ParseKey(puzzleKey)
		if err != nil {
			return req, fmt.Errorf("invalid -puzzle: %w", err)
		}
		key = parsed
	}

	if key.Day <= 0 || key.Part <= 0 || inputFile == "" {
		return req, errors.New("either -d, or -puzzle or -day and -part with -inputFile, are required")
	}

	input, err := os.ReadFile(inputFile)
	if err != nil {
		return req, fmt.Errorf("unable to read the input file: %w", err)
	}

	return models.SolveRequest{Day: key.Day, Part: key.Part, Variant: key.Variant, Input: string(input)}, nil
}

func run(log *zerolog.Logger, req models.SolveRequest, stream string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3, log)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.Publish(ctx, client, stream, req)
	if err != nil {
		return err
	}

	log.Info().
		Str("stream", stream).
		Str("id", id).
		Str("request_id", req.RequestID).
		Str("puzzle", req.Key().String()).
		Msg("Published successfully!")
	return nil
}
