package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvannest/joist/internal/cli/formatter"
	"github.com/rvannest/joist/internal/domain"
)

// joistHuhTheme adapts the huh base theme to the joist palette.
func joistHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateCode(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// runTaskForm collects the essential task fields interactively. It fills the
// provided pointers in place so the calling command can proceed exactly as if
// the values had arrived via flags.
func runTaskForm(code, name, parent, status *string) error {
	if *status == "" {
		*status = string(domain.StatusNotStarted)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Code").
				Placeholder("1.2.3").
				Value(code).
				Validate(validateCode),
			huh.NewInput().
				Title("Name").
				Placeholder("Design review").
				Value(name).
				Validate(validateName),
			huh.NewInput().
				Title("Parent code (blank for root)").
				Placeholder("1.2").
				Value(parent),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not started", string(domain.StatusNotStarted)),
					huh.NewOption("In progress", string(domain.StatusInProgress)),
					huh.NewOption("Done", string(domain.StatusDone)),
					huh.NewOption("Blocked", string(domain.StatusBlocked)),
				).
				Value(status),
		),
	).WithTheme(joistHuhTheme()).WithShowHelp(false)

	return form.Run()
}
