package main

import (
	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var infoCmd = &cobra.Command{
	Use:     "info <file.pptx>",
	Aliases: []string{"inspect"},
	Short:   "Print a presentation's slide, layout, and master counts",
	Args:    cobra.ExactArgs(1),
	RunE:    runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := pptx.Open(args[0])
	if err != nil {
		return err
	}

	header.Println(args[0])
	info.Printf("  slide size: %.2f x %.2f in (%d x %d EMU)\n",
		p.SlideWidth.Inches(), p.SlideHeight.Inches(), p.SlideWidth, p.SlideHeight)
	info.Printf("  masters: %d, layouts: %d, slides: %d\n", len(p.Masters), len(p.Layouts), len(p.Slides))
	if p.Properties != nil && p.Properties.Title != "" {
		info.Printf("  title: %s\n", p.Properties.Title)
	}
	return nil
}
