package page

// MetaDescription is the meta field name carrying the page description.
const MetaDescription = "description"

// Document models the hosting surface's descriptive metadata: a title plus
// named meta fields. The terminal analog of the title is the window title;
// meta fields have no visible analog but are kept so the mount side effect
// stays observable and testable.
type Document struct {
	title string
	meta  map[string]string
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{meta: make(map[string]string)}
}

// Title returns the current document title.
func (d *Document) Title() string { return d.title }

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) { d.title = title }

// Meta returns the content of the named meta field and whether it exists.
func (d *Document) Meta(name string) (string, bool) {
	content, ok := d.meta[name]
	return content, ok
}

// UpsertMeta creates the named meta field if absent, otherwise updates it
// in place. Running it twice with the same arguments leaves the document
// unchanged after the first run.
func (d *Document) UpsertMeta(name, content string) {
	if d.meta == nil {
		d.meta = make(map[string]string)
	}
	d.meta[name] = content
}

// ApplyMetadata sets the document title and description to the fixed page
// literals. It runs once per content-view mount and is idempotent.
func ApplyMetadata(d *Document) {
	d.SetTitle(Title)
	d.UpsertMeta(MetaDescription, Description)
}
