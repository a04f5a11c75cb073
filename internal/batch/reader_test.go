package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestReader_InvalidFile(t *testing.T) {
	file := strings.NewReader("invalid file content")

	reader := NewReader(file, newTestLogger())
	ctx := context.Background()
	ch := reader.ReadAll(ctx)

	count := 0
	for record := range ch {
		count++
		if record.Error == nil {
			t.Errorf("expected parse error for invalid JSON, but got none")
		}
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestReader_ValidFile(t *testing.T) {
	inputFile := `{"request_id":"a","day":1,"part":1,"input":"+1\n-2\n+3\n+1"}
  {"request_id":"b","day":5,"part":2,"variant":"","input":"dabAcCaCBAcCcaDA"}`

	file := strings.NewReader(inputFile)

	ctx := context.Background()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	count := 0
	for record := range ch {
		count += 1
		if record.Error != nil {
			t.Errorf("Error reading the solve request record. Got: %s", record.Error)
		}
		if record.Request.Input == "" {
			t.Errorf("Expected input on line %d", record.LineNumber)
		}
	}
	if count != 2 {
		t.Errorf("Expected 2 solve requests. Got: %d", count)
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	// Large input with many lines
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, `{"day":1,"part":1,"input":"+1"}`)
	}
	file := strings.NewReader(strings.Join(lines, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	count := 0
	for range ch {
		count++
		if count == 5 {
			cancel() // Cancel after 5 records
			break
		}
	}

	// Should have stopped early
	if count >= 100 {
		t.Errorf("expected early cancellation, but read all records")
	}
}

func TestReader_LineNumbers(t *testing.T) {
	inputFile := `{"request_id":"a","day":1,"part":1,"input":"+1"}

{"invalid json}
{"request_id":"b","day":2,"part":1,"input":"abcdef"}`

	file := strings.NewReader(inputFile)
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(context.Background())
	records := []InputRecord{}
	for record := range ch {
		records = append(records, record)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	// Check line numbers
	if records[0].LineNumber != 1 {
		t.Errorf("first record should be line 1, got %d", records[0].LineNumber)
	}
	if records[1].LineNumber != 3 || records[1].Error == nil {
		t.Errorf("error record should be line 3, got %d (%v)", records[1].LineNumber, records[1].Error)
	}
	if records[2].LineNumber != 4 || records[2].Request.RequestID != "b" {
		t.Errorf("third record should be line 4, got %d", records[2].LineNumber)
	}
}
