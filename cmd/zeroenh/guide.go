package main

import (
	_ "embed"
	"fmt"

	"zeroenh/cmd/zeroenh/ui"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

// guideCmd renders the profile authoring guide in the terminal
var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the profile authoring guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

		var renderer *glamour.TermRenderer
		var err error
		if styles.Theme.IsDark {
			renderer, err = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
		} else {
			renderer, err = glamour.NewTermRenderer(
				glamour.WithStylePath("light"),
				glamour.WithWordWrap(80),
			)
		}
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
			return nil
		}

		rendered, err := renderer.Render(guideMarkdown)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
