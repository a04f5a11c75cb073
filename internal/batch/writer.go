package batch

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits results either as JSON lines as they arrive, or as a summary
// table rendered on Close.
type Writer struct {
	w       io.Writer
	format  string
	encoder *json.Encoder
	results []models.SolveResult
	logger  *zerolog.Logger
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatJSONL:
		return &Writer{w: w, format: format, encoder: json.NewEncoder(w), logger: logger}, nil
	case FormatSummary:
		return &Writer{w: w, format: format, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func (w *Writer) Write(result models.SolveResult) error {
	if w.format == FormatJSONL {
		if err := w.encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result %s: %w", result.ID, err)
		}
		return nil
	}

	w.results = append(w.results, result)
	return nil
}

// Close flushes the summary table. It is a no-op for JSON lines.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	if _, err := io.WriteString(w.w, RenderSummary(w.results)+"\n"); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	w.logger.Debug().Int("results", len(w.results)).Msg("Summary written")
	return nil
}

// RenderSummary renders results as a table sorted by puzzle, with a footer
// counting successes.
func RenderSummary(results []models.SolveResult) string {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b models.SolveResult) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.Part, b.Part),
			cmp.Compare(a.Variant, b.Variant),
			cmp.Compare(a.ID, b.ID),
		)
	})

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"ID", "Day", "Part", "Variant", "Status", "Answer", "Input", "Duration", "Cached"})

	var ok, totalBytes int
	var totalDuration time.Duration
	for _, r := range sorted {
		detail := r.Answer
		if !r.OK() {
			detail = r.Error
		} else {
			ok++
		}
		totalBytes += r.InputBytes
		totalDuration += r.Duration

		tbl.AppendRow(table.Row{
			r.ID,
			r.Day,
			r.Part,
			r.Variant,
			string(r.Status),
			detail,
			humanize.IBytes(uint64(r.InputBytes)),
			r.Duration.Round(time.Microsecond).String(),
			r.Cached,
		})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("Total: %d", len(sorted)),
		"", "", "",
		fmt.Sprintf("%d ok", ok),
		"",
		humanize.IBytes(uint64(totalBytes)),
		totalDuration.Round(time.Microsecond).String(),
		"",
	})

	return tbl.Render()
}
