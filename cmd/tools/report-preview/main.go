// cmd/tools/report-preview/main.go
//
// report-preview runs the benchmark calculation against one survey response
// file and prints the preview JSON. No broker, database, or browser needed,
// which makes it handy for checking dataset edits before a rollout.
//
// Usage:
//
//	report-preview -response testdata/response.json [-dataset data/benchmarks.json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"benchmark-workers/internal/benchmark"
	"benchmark-workers/internal/common/logger"
	"benchmark-workers/internal/models"
	"benchmark-workers/internal/report"
)

func main() {
	responsePath := flag.String("response", "", "Path to a survey response JSON file (required)")
	datasetPath := flag.String("dataset", "data/benchmarks.json", "Path to the benchmark dataset")
	flag.Parse()

	if *responsePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -response is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*responsePath, *datasetPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(responsePath, datasetPath string) error {
	raw, err := os.ReadFile(responsePath)
	if err != nil {
		return fmt.Errorf("reading response file: %w", err)
	}

	var resp models.SurveyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("parsing response file: %w", err)
	}

	dataset, err := benchmark.Load(datasetPath)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	log := logger.NewNoOpLogger()
	calculator := benchmark.NewCalculator(dataset, benchmark.DefaultFallbacks(), log)
	composer := report.NewComposer(dataset)

	// Preview mode never renders, so no browser-backed renderer is wired.
	generator := report.NewGenerator(calculator, composer, nil, "", log)
	preview := generator.GeneratePreview(&resp)

	out, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
