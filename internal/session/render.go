package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sonyjtp/joke-bot/internal/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#74c7ec")).Bold(true)
	jokeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
)

func renderWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to the Joke Bot!"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Type 'q' at the menu to quit."))
	return b.String()
}

func renderMenuHeader(category models.Category, told int) string {
	header := fmt.Sprintf("Menu | Category: %s | Jokes: %d",
		strings.ToUpper(string(category)), told)
	return titleStyle.Render(header) + "\n" + mutedStyle.Render(strings.Repeat("-", 50))
}

func renderOptions() string {
	return "[n] Next Joke  [c] Change Category  [q] Quit"
}

func renderJoke(joke models.Joke) string {
	return "\n" + jokeStyle.Render(joke.Text) + "\n" + mutedStyle.Render(strings.Repeat("=", 60))
}

func renderCategoryMenu(categories []models.Category) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CATEGORY SELECTION"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("=", 50)))
	for i, category := range categories {
		b.WriteString(fmt.Sprintf("\n    %d. %s", i, strings.ToUpper(string(category))))
	}
	return b.String()
}

func renderCategoryChanged(category models.Category) string {
	return confirmStyle.Render(fmt.Sprintf("Category changed to %s", strings.ToUpper(string(category))))
}

func renderError(msg string) string {
	return errorStyle.Render(msg)
}

func renderFarewell() string {
	return titleStyle.Render("Goodbye!")
}

func renderRecap(jokes []models.Joke) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Here are all the jokes you received:"))
	for i, joke := range jokes {
		b.WriteString(fmt.Sprintf("\n%d. [%s] %s", i+1, strings.ToUpper(string(joke.Category)), joke.Text))
	}
	return b.String()
}
