package main

import (
	"fmt"
	"strings"

	"github.com/phpaudit/error-tracking-analysis/rule"
)

// displayResult shows the final analysis result in a formatted output.
func displayResult(result rule.Result) {
	fmt.Println(strings.Repeat("-", 60))

	switch result.Status {
	case rule.Passed:
		fmt.Println("✅ Error tracking detected")
		if len(result.Evidence) > 0 {
			fmt.Printf("   Evidence: %s\n", strings.Join(result.Evidence, ", "))
		}
	case rule.Warning:
		fmt.Println("⚠️  Rule violated")
	case rule.Failed:
		fmt.Println("❌ Analysis failed")
	case rule.Skipped:
		fmt.Println("Analysis skipped: no composer.json found")
	}

	for _, issue := range result.Issues {
		fmt.Printf("\n[%s] %s\n", issue.Severity, issue.Message)
		if issue.Recommendation != "" {
			fmt.Printf("   Recommendation: %s\n", issue.Recommendation)
		}
	}
}
