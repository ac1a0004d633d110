package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matyo91/youtube-transcript-api/internal/transcript"
	"github.com/matyo91/youtube-transcript-api/pkg/formatters"
	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

func main() {
	var (
		format = flag.String("format", "json", "Output format (json, text, webvtt, srt)")
		pretty = flag.Bool("pretty", false, "Pretty-print JSON output")
		input  = flag.String("input", "", "Input file, JSON segment array or timedtext XML (defaults to stdin)")
	)
	flag.Parse()

	data, err := readInput(*input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cues, err := decodeCues(data)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var outputFormatter formatters.Formatter

	if *format == "json" {
		outputFormatter = formatters.NewJSONFormatter(
			formatters.WithPrettyPrint(*pretty),
		)
	} else {
		outputFormatter, err = formatters.ByName(*format)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	out, err := outputFormatter.Format(models.TranscriptDocument{Cues: cues})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s", out)
	os.Exit(0)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeCues sniffs the input: timedtext XML goes through the parser, JSON
// segment arrays through the boundary normalizer.
func decodeCues(data []byte) ([]models.Cue, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "<") {
		return transcript.ParseTimedText(data)
	}

	var segments []map[string]any
	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()
	if err := decoder.Decode(&segments); err != nil {
		return nil, fmt.Errorf("failed to decode JSON segments: %w", err)
	}

	return transcript.Normalize(segments)
}
