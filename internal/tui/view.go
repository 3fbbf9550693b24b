package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/teamssUTXO/comingsoon/internal/page"
	"github.com/teamssUTXO/comingsoon/internal/tui/panels"
)

// View renders exactly one of the two views, selected by phase.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least 60x16.", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	if m.phase.Loading() {
		return panels.RenderLoading(panels.LoadingProps{
			Frame: m.spinner.View(),
		}, m.width, m.height, panels.LoadingStyles{
			Ring:    m.theme.RingStyle(m.fadeStep),
			Spinner: m.theme.SpinnerStyle(m.fadeStep),
			Label:   m.theme.FadedLabelStyle(m.fadeStep),
		})
	}

	body := panels.RenderContent(panels.ContentProps{
		Badge:     page.Badge,
		Heading:   page.Heading,
		Subtext:   page.Subtext,
		LinkLabel: page.LinkLabel,
		LinkURL:   page.LinkURL,
		Footer:    page.Footer(time.Now().Year()),
		Visible:   m.revealed,
	}, m.layout.Content.Width, m.height, panels.ContentStyles{
		Badge:   m.theme.BadgeStyle(),
		Heading: m.theme.HeadingStyle(),
		Subtext: m.theme.SubtextStyle(),
		Button:  m.theme.ButtonStyle(),
		Footer:  m.theme.FooterStyle(),
	})

	// The content column is narrower than the terminal; center it.
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}
