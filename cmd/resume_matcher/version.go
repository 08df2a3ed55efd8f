package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the resume_matcher version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("resume_matcher %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
