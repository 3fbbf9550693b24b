package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ElementCount is the number of content elements revealed by the staggered
// entrance: badge, heading, subtext, link button, footer.
const ElementCount = 5

// ContentProps holds all data needed to render the content view. Visible
// caps how many elements (top to bottom) are shown; the root model advances
// it on each reveal tick.
type ContentProps struct {
	Badge     string
	Heading   string
	Subtext   string
	LinkLabel string
	LinkURL   string
	Footer    string
	Visible   int
}

// ContentStyles holds the styles for the content view's parts.
type ContentStyles struct {
	Badge   lipgloss.Style
	Heading lipgloss.Style
	Subtext lipgloss.Style
	Button  lipgloss.Style
	Footer  lipgloss.Style
}

// RenderContent renders the landing content: badge, heading, subtext, link
// button and footer, in that order. Elements past props.Visible are held
// back as blank space so the block does not shift while elements appear.
func RenderContent(props ContentProps, width, height int, styles ContentStyles) string {
	textW := width - 4
	if textW < 20 {
		textW = 20
	}

	button := styles.Button.Render(props.LinkLabel)
	if props.LinkURL != "" {
		// OSC 8 hyperlink; terminals open the target in the browser.
		button = termenv.Hyperlink(props.LinkURL, button)
	}

	elements := []string{
		styles.Badge.Render("• " + props.Badge + " •"),
		styles.Heading.Width(textW).Align(lipgloss.Center).Render(props.Heading),
		styles.Subtext.Width(textW).Align(lipgloss.Center).Render(props.Subtext),
		button,
		styles.Footer.Render(props.Footer),
	}

	visible := props.Visible
	if visible < 0 {
		visible = 0
	}
	if visible > len(elements) {
		visible = len(elements)
	}
	for i := visible; i < len(elements); i++ {
		elements[i] = blankLines(lipgloss.Height(elements[i]))
	}

	var rows []string
	for i, el := range elements {
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, el)
	}
	block := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// blankLines returns n empty lines so a hidden element keeps its height.
func blankLines(n int) string {
	if n <= 1 {
		return ""
	}
	return strings.Repeat("\n", n-1)
}
