package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.pptx>",
	Short: "Check that a presentation opens cleanly and report what is wrong if not",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := pptx.Open(args[0])
	if err != nil {
		var pkgErr *pptx.PackageError
		if errors.As(err, &pkgErr) {
			errColor.Printf("%s: %s\n", args[0], pkgErr.Kind)
			info.Printf("  %v\n", pkgErr)
		} else {
			errColor.Printf("%s: %v\n", args[0], err)
		}
		return err
	}

	for i, slide := range p.Slides {
		if slide.Layout() == nil {
			info.Printf("  warning: slide %d has no resolvable layout\n", i+1)
		}
	}
	success.Printf("%s: ok (%d slides)\n", args[0], len(p.Slides))
	return nil
}
