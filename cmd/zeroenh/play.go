package main

import (
	"context"
	"fmt"
	"strings"

	"zeroenh/cmd/zeroenh/ui"
	"zeroenh/internal/prompt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// playCmd launches the interactive explorer
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive explorer for prompts, seeds, and profiles",
	Long: `Opens a live view of the enhancement pipeline. Type a prompt and watch
classification, gap filling, and filler selection update on every
keystroke. Profile files are hot-reloaded while the explorer runs.

Keys:
  enter      next seed
  tab        cycle intensity
  ctrl+p     cycle profile
  esc        quit`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	reg := loadRegistry()

	if watcher, err := prompt.NewWatcher(reg); err == nil {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := watcher.Start(ctx); err == nil {
			defer watcher.Stop()
		}
	}

	p := tea.NewProgram(newPlayModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// playModel is the bubbletea model for the explorer
type playModel struct {
	input    textinput.Model
	viewport viewport.Model
	styles   ui.Styles
	registry *prompt.Registry

	intensities  []prompt.Intensity
	intensityIdx int
	profileName  string
	seed         uint32
	width        int
	height       int
}

func newPlayModel(reg *prompt.Registry) playModel {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	ti := textinput.New()
	ti.Placeholder = "Type a prompt..."
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 1024
	ti.Width = 80
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.Body

	vp := viewport.New(80, 20)

	intensityIdx := 2 // moderate
	if in, err := prompt.ParseIntensity(cfg.DefaultIntensity); err == nil {
		for i, tier := range prompt.Intensities() {
			if tier == in {
				intensityIdx = i
			}
		}
	}

	m := playModel{
		input:        ti,
		viewport:     vp,
		styles:       styles,
		registry:     reg,
		intensities:  prompt.Intensities(),
		intensityIdx: intensityIdx,
		profileName:  cfg.DefaultProfile,
		seed:         42,
	}
	m.refresh()
	return m
}

func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.seed++
			m.refresh()
			return m, nil
		case tea.KeyTab:
			m.intensityIdx = (m.intensityIdx + 1) % len(m.intensities)
			m.refresh()
			return m, nil
		case tea.KeyCtrlP:
			m.cycleProfile()
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("zeroenh play"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"seed %d | %s | %s | enter: next seed | tab: intensity | ctrl+p: profile | esc: quit",
		m.seed, m.intensities[m.intensityIdx], m.profileName)))
	return b.String()
}

// cycleProfile advances to the next registry entry, tolerating profiles
// that appeared or vanished since the last look.
func (m *playModel) cycleProfile() {
	names := m.registry.Names()
	if len(names) == 0 {
		return
	}
	idx := 0
	for i, name := range names {
		if name == m.profileName {
			idx = i
			break
		}
	}
	m.profileName = names[(idx+1)%len(names)]
}

// refresh re-runs the pipeline with the current inputs and rebuilds the
// trace view.
func (m *playModel) refresh() {
	prof, err := m.registry.Get(m.profileName)
	if err != nil {
		m.profileName = prompt.DefaultProfileName
		prof, _ = m.registry.Get(m.profileName)
	}

	res := prompt.Run(m.input.Value(), m.seed, m.intensities[m.intensityIdx], prof, prompt.Options{})
	m.viewport.SetContent(m.renderResult(prof, res))
}

func (m *playModel) renderResult(prof *prompt.Profile, res prompt.Result) string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("output"))
	b.WriteString("\n")
	if res.Output == "" {
		b.WriteString(m.styles.Muted.Render("(empty)"))
	} else {
		b.WriteString(m.styles.Output.Render(res.Output))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("tokens"))
	b.WriteString("\n")
	if len(res.Tokens) == 0 {
		b.WriteString(m.styles.Muted.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, t := range res.Tokens {
		category := t.Category
		if category == "" {
			category = "unclassified"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.Value.Render(fmt.Sprintf("%-30q", t.Text)),
			m.styles.Muted.Render(category)))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("fillers"))
	b.WriteString("\n")
	if len(res.Selections) == 0 {
		b.WriteString(m.styles.Muted.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, sel := range res.Selections {
		marker := ""
		if sel.Exhausted {
			marker = " " + m.styles.Warning.Render("(exhausted)")
		} else if sel.Attempts > 0 {
			marker = " " + m.styles.Muted.Render(fmt.Sprintf("(attempt %d)", sel.Attempts))
		}
		b.WriteString(fmt.Sprintf("  %-12s %s%s\n",
			sel.Category, m.styles.Value.Render(sel.Value), marker))
	}
	b.WriteString("\n")

	missing := "(none)"
	if len(res.Gaps.Missing) > 0 {
		missing = strings.Join(res.Gaps.Missing, ", ")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("missing"), m.styles.Muted.Render(missing)))
	b.WriteString(fmt.Sprintf("%s template %d of %d, signature %08x\n",
		m.styles.Label.Render("run"), res.TemplateIndex+1, len(prof.Templates), res.Signature))

	return b.String()
}
