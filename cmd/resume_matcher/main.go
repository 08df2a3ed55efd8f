// Package main provides the resume-matcher CLI: it parses job postings and a
// resume, ranks the jobs with the matching engine, and reports the results.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Match a resume against job postings",
	Long:  "resume_matcher ranks job postings against a candidate resume by blending weighted skill overlap with semantic similarity, and shows the textual evidence behind every match.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
