package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/batch"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/setup/logger"
	"github.com/rs/zerolog"
)

var errPuzzlesFailed = errors.New("one or more puzzles failed")

func main() {
	day := flag.Int("day", 0, "Puzzle day to solve")
	part := flag.Int("part", 0, "Puzzle part to solve, 0 solves both parts")
	variant := flag.String("variant", "", "Solution variant, empty uses the default")
	puzzleKey := flag.String("puzzle", "", "Puzzle key such as 3/2/geometric, overrides -day, -part and -variant")
	inputFile := flag.String("inputFile", "input.txt", "Relative path to the input file")
	all := flag.Bool("all", false, "Solve every enabled puzzle with inputs from -inputDir")
	inputDir := flag.String("inputDir", "inputs", "Directory holding dayNN.txt inputs for -all")
	list := flag.Bool("list", false, "List the available puzzles")
	flag.Parse()

	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	logger := logger.New(cfg.LogLevel, true)
	if envErr != nil {
		logger.Debug().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to wire dependencies")
		os.Exit(1)
	}

	switch {
	case *list:
		printPuzzles(deps.Registry.List())
	case *all:
		err = solveAll(ctx, deps, *inputDir, cfg.Workers)
	default:
		var key puzzle.Key
		key, err = targetKey(*puzzleKey, *day, *part, *variant)
		if err == nil {
			err = solveDay(ctx, deps, key, *inputFile)
		}
	}

	deps.Close()
	if err != nil {
		logger.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

// targetKey returns the puzzle named by -puzzle, or by -day, -part and
// -variant when -puzzle is empty.
func targetKey(puzzleKey string, day, part int, variant string) (puzzle.Key, error) {
	if puzzleKey == "" {
		return puzzle.Key{Day: day, Part: part, Variant: variant}, nil
	}

	key, err := puzzle.ParseKey(puzzleKey)
	if err != nil {
		return puzzle.Key{}, fmt.Errorf("invalid -puzzle: %w", err)
	}
	return key, nil
}

func solveDay(ctx context.Context, deps *setup.Dependencies, key puzzle.Key, inputFile string) error {
	day, part, variant := key.Day, key.Part, key.Variant
	if day <= 0 {
		return errors.New("-day or -puzzle is required, or use -all / -list")
	}
	if part < 0 || part > 2 {
		return fmt.Errorf("-part must be 0, 1 or 2, got %d", part)
	}

	bytes, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("unable to read the input file: %w", err)
	}
	input := string(bytes)

	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}

	failed := false
	for _, p := range parts {
		result := deps.Executor.Execute(ctx, models.SolveRequest{
			Day:     day,
			Part:    p,
			Variant: variant,
			Input:   input,
		})
		if !result.OK() {
			deps.Logger.Error().
				Str("puzzle", puzzle.Key{Day: day, Part: p, Variant: variant}.String()).
				Str("status", string(result.Status)).
				Msg(result.Error)
			failed = true
			continue
		}
		fmt.Printf("AoC %d, Day%d, Part%d solution is: %s\n", aoc.Year, day, p, result.Answer)
	}

	if failed {
		return errPuzzlesFailed
	}
	return nil
}

func solveAll(ctx context.Context, deps *setup.Dependencies, inputDir string, workers int) error {
	records, err := allRecords(deps.Registry.List(), inputDir, deps.Logger)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no puzzle inputs found in %s", inputDir)
	}

	processor := batch.NewProcessor(deps.Executor, workers, deps.Logger)

	var results []models.SolveResult
	failed := false
	for result := range processor.Process(ctx, records) {
		results = append(results, result)
		if !result.OK() {
			failed = true
		}
	}

	fmt.Println(batch.RenderSummary(results))

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if failed {
		return errPuzzlesFailed
	}
	return nil
}

// allRecords builds one request per default puzzle whose day has an input
// file. Days without an input file are skipped.
func allRecords(puzzles []puzzle.Puzzle, inputDir string, logger *zerolog.Logger) ([]batch.InputRecord, error) {
	inputs := map[int]string{}
	var records []batch.InputRecord

	for _, p := range puzzles {
		if !p.Default {
			continue
		}

		input, ok := inputs[p.Key.Day]
		if !ok {
			path := dayInputPath(inputDir, p.Key.Day)
			bytes, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn().Str("file", path).Int("day", p.Key.Day).Msg("No input file, skipping day")
				inputs[p.Key.Day] = ""
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("unable to read %s: %w", path, err)
			}
			input = string(bytes)
			inputs[p.Key.Day] = input
		}
		if input == "" {
			continue
		}

		records = append(records, batch.InputRecord{
			LineNumber: len(records) + 1,
			Request: models.SolveRequest{
				RequestID: p.Key.String(),
				Day:       p.Key.Day,
				Part:      p.Key.Part,
				Variant:   p.Key.Variant,
				Input:     input,
			},
		})
	}

	return records, nil
}

func dayInputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

func printPuzzles(puzzles []puzzle.Puzzle) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Key", "Title", "Variant", "Default"})
	for _, p := range puzzles {
		variant := p.Key.Variant
		if variant == "" {
			variant = "-"
		}
		tbl.AppendRow(table.Row{p.Key.String(), p.Title, variant, strconv.FormatBool(p.Default)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("AoC %d", aoc.Year), fmt.Sprintf("%d puzzles", len(puzzles)), "", ""})
	fmt.Println(tbl.Render())
}
