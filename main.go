package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phpaudit/error-tracking-analysis/config"
	"github.com/phpaudit/error-tracking-analysis/rule"
)

func main() {
	var (
		projectPath = flag.String("path", ".", "Path to the project to analyze")
		configPath  = flag.String("config", "", "Path to an optional YAML rule configuration")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		watch       = flag.Bool("watch", false, "Re-run the analysis when watched files change")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Loading configuration failed: %v", err)
		}
		cfg = loaded
	}

	fmt.Println("=== Error Tracking Analysis ===")

	if *watch {
		runWatch(*projectPath, cfg, *verbose)
		return
	}

	result := runAnalysis(*projectPath, cfg, *verbose)
	os.Exit(exitCode(result.Status))
}

func runAnalysis(projectPath string, cfg config.Config, verbose bool) rule.Result {
	r := rule.New(cfg)
	r.Verbose = verbose

	result := r.Analyze(projectPath)
	displayResult(result)
	return result
}

func exitCode(status rule.Status) int {
	switch status {
	case rule.Passed:
		return 0
	case rule.Skipped:
		return 2
	default:
		return 1
	}
}
