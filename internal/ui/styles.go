// Package ui provides terminal styling for recetario CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ayu theme color palette
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
)

var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	// TitleStyle is used for the recipe title and section headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// IndexStyle right-aligns entry positions so lines stay in columns.
	IndexStyle = lipgloss.NewStyle().Foreground(ColorMuted).Width(4).Align(lipgloss.Right)
)

const (
	IconPass = "✓"
	IconFail = "✗"
	Bullet   = "•"
)

// RenderPass renders a success line with the pass icon.
func RenderPass(s string) string {
	return PassStyle.Render(IconPass) + " " + s
}

// RenderFail renders a failure line with the fail icon.
func RenderFail(s string) string {
	return FailStyle.Render(IconFail) + " " + s
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return MutedStyle.Render(s)
}

// RenderTitle renders a header in bold accent.
func RenderTitle(s string) string {
	return TitleStyle.Render(s)
}

// RenderEntry renders one list line prefixed by its zero-based position.
func RenderEntry(i int, line string) string {
	return IndexStyle.Render(fmt.Sprintf("%d.", i)) + " " + line
}

// RenderGroup renders a catalog group: the generic name followed by its
// specific options, one per line.
func RenderGroup(generic string, specifics []string) string {
	var b strings.Builder
	b.WriteString(AccentStyle.Render(generic))
	for _, s := range specifics {
		b.WriteString("\n  ")
		b.WriteString(MutedStyle.Render(Bullet))
		b.WriteString(" ")
		b.WriteString(s)
	}
	return b.String()
}
