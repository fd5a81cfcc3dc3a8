package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var extractTextCmd = &cobra.Command{
	Use:     "extract-text <file.pptx>",
	Aliases: []string{"text"},
	Short:   "Print all text content from a presentation's slides and notes",
	Args:    cobra.ExactArgs(1),
	RunE:    runExtractText,
}

func runExtractText(cmd *cobra.Command, args []string) error {
	p, err := pptx.Open(args[0])
	if err != nil {
		return err
	}
	fmt.Println(p.ExtractText())
	return nil
}
