package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	success  = color.New(color.FgGreen, color.Bold)
	errColor = color.New(color.FgRed, color.Bold)
	info     = color.New(color.FgCyan)
	header   = color.New(color.FgWhite, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "pptxctl",
	Short: "Inspect and build PresentationML (.pptx/.pptm) files",
	Long: `pptxctl is a small command-line front end over gopptx-core.

It can create a blank presentation, inspect an existing one's slide
and layout structure, pull out its text content, export it to HTML,
and validate or repair a file another tool left in a bad state.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(infoCmd, slidesCmd, exportHTMLCmd, validateCmd, repairCmd, newCmd, extractTextCmd)
}
