package main

import (
	"fmt"

	"zeroenh/cmd/zeroenh/ui"
	"zeroenh/internal/prompt"

	"github.com/spf13/cobra"
)

// profilesCmd lists every loadable profile
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := loadRegistry()
		styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("Profiles (%s)", reg.Dir())))
		for _, p := range reg.Profiles() {
			meta := p.Type
			if p.Version != "" {
				meta += " v" + p.Version
			}
			fmt.Fprintf(out, "  %s %s\n",
				styles.Bold.Render(fmt.Sprintf("%-14s", p.Name)),
				styles.Muted.Render(meta))
			if p.Description != "" {
				fmt.Fprintf(out, "    %s\n", p.Description)
			}
			fmt.Fprintf(out, "    %s\n", styles.Muted.Render(fmt.Sprintf(
				"%d categories, %d templates, ~%s combinations",
				len(p.Categories), len(p.Templates),
				prompt.FormatCombinations(prompt.Combinations(p)))))
			if p.Source != "" {
				fmt.Fprintf(out, "    %s\n", styles.Muted.Render(p.Source))
			}
		}
		return nil
	},
}

// describeCmd prints one profile's vocabulary summary
var describeCmd = &cobra.Command{
	Use:   "describe [profile]",
	Short: "Show a profile's categories, pools, rules, and combination space",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := loadRegistry()
		name := cfg.DefaultProfile
		if len(args) == 1 {
			name = args[0]
		}
		p, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), prompt.DescribeProfile(p))
		return nil
	},
}

// validateCmd checks a profile file without installing it
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a profile file",
	Long: `Loads a profile file, resolves its extends chain, and reports every
structural violation found. Exits non-zero when the profile is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := prompt.LoadProfileFile(args[0])
		if err != nil {
			return err
		}
		styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d categories, %d templates)\n",
			styles.Success.Render("valid:"), p.Name, len(p.Categories), len(p.Templates))
		return nil
	},
}
