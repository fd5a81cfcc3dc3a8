package main

import (
	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var repairOut string

var repairCmd = &cobra.Command{
	Use:   "repair <file.pptx>",
	Short: "Rewrite a presentation through a clean open/save round trip",
	Long: `repair opens the presentation and re-serializes it, regenerating the
content-type catalog, relationship files, and presentation-level parts.
This clears the common corruptions other tools leave behind (stale
parts, missing overrides, unreferenced relationship entries); it does
not attempt content-level reconstruction of unreadable parts.`,
	Args: cobra.ExactArgs(1),
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVarP(&repairOut, "out", "o", "", "output file (default: overwrite input)")
}

func runRepair(cmd *cobra.Command, args []string) error {
	p, err := pptx.Open(args[0])
	if err != nil {
		return err
	}
	out := repairOut
	if out == "" {
		out = args[0]
	}
	if err := p.Save(out); err != nil {
		return err
	}
	success.Printf("rewrote %s (%d slides)\n", out, len(p.Slides))
	return nil
}
