// Package page holds the splash page content and the document metadata model.
package page

import "fmt"

// Fixed page literals. The splash shows exactly one page, so the copy lives
// here rather than in configuration.
const (
	// Title is the document title applied when the content view mounts.
	Title = "Timothé Fardella | First Blockchain Portfolio Coming Soon"

	// Description is the document description metadata.
	Description = "My new blockchain portfolio website is currently under construction. Coming soon."

	// Badge is the status badge shown above the heading.
	Badge = "UNDER CONSTRUCTION"

	// Heading is the main heading of the content view.
	Heading = "First Blockchain Portfolio"

	// Subtext is the paragraph below the heading.
	Subtext = "My new blockchain portfolio website is currently under construction. Coming soon."

	// LinkLabel is the label of the external profile button.
	LinkLabel = "Follow on GitHub"

	// LinkURL is the external profile link target.
	LinkURL = "https://github.com/teamssUTXO"

	// Owner is the copyright holder named in the footer.
	Owner = "Timothé Fardella"
)

// Footer returns the copyright footer line for the given calendar year.
func Footer(year int) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, Owner)
}
