package main

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vantagics/gopptx-core"
)

var exportHTMLOut string

var exportHTMLCmd = &cobra.Command{
	Use:   "export-html <file.pptx>",
	Short: "Export a presentation's text content as a single HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportHTML,
}

func init() {
	exportHTMLCmd.Flags().StringVarP(&exportHTMLOut, "out", "o", "", "output file (default stdout)")
}

func runExportHTML(cmd *cobra.Command, args []string) error {
	p, err := pptx.Open(args[0])
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	title := args[0]
	if p.Properties != nil && p.Properties.Title != "" {
		title = p.Properties.Title
	}
	fmt.Fprintf(&sb, "<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))

	for i, slide := range p.Slides {
		fmt.Fprintf(&sb, "<section class=\"slide\" id=\"slide-%d\">\n", i+1)
		if name := slide.Name(); name != "" {
			fmt.Fprintf(&sb, "<h2>%s</h2>\n", html.EscapeString(name))
		}
		for _, line := range strings.Split(slide.ExtractText(), "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(line))
		}
		if notes := slide.Notes(); notes != "" {
			fmt.Fprintf(&sb, "<aside class=\"notes\">%s</aside>\n", html.EscapeString(notes))
		}
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</body>\n</html>\n")

	if exportHTMLOut == "" {
		fmt.Print(sb.String())
		return nil
	}
	if err := os.WriteFile(exportHTMLOut, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	success.Printf("wrote %s\n", exportHTMLOut)
	return nil
}
