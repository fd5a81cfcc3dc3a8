package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var slidesCmd = &cobra.Command{
	Use:   "slides <file.pptx>",
	Short: "List a presentation's slides in order",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlides,
}

func runSlides(cmd *cobra.Command, args []string) error {
	p, err := pptx.Open(args[0])
	if err != nil {
		return err
	}

	for i, slide := range p.Slides {
		name := slide.Name()
		if name == "" {
			name = fmt.Sprintf("(slide %d)", i+1)
		}
		fmt.Printf("[%d] id=%d %q", i+1, slide.ID(), name)
		if layout := slide.Layout(); layout != nil {
			fmt.Printf(" layout=%q", layout.Name)
		}
		if slide.Hidden() {
			fmt.Print(" (hidden)")
		}
		fmt.Println()
	}
	return nil
}
