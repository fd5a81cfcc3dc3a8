package main

import (
	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var newTitle string

var newCmd = &cobra.Command{
	Use:   "new <output.pptx>",
	Short: "Create a blank presentation with the standard default template",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "title slide text")
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]

	p, err := pptx.New()
	if err != nil {
		return err
	}

	if newTitle != "" {
		layout, err := p.LayoutByName("Title Slide")
		if err != nil {
			return err
		}
		slide, err := p.AddSlide(layout)
		if err != nil {
			return err
		}
		for _, sh := range slide.Shapes().Shapes() {
			if a, ok := sh.(*pptx.AutoShape); ok && a.TextFrame != nil {
				a.TextFrame.AddParagraph().AddRun(newTitle)
				break
			}
		}
	}

	if err := p.Save(path); err != nil {
		return err
	}
	success.Printf("wrote %s\n", path)
	return nil
}
