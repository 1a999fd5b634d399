package main

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
)

const privacyNotice = `# Privacy

This site keeps a small amount of anonymous data to see how it is used.

- **Visits.** Each page request records a salted hash of your address, your
  browser's user agent and the path. The raw address is never written down.
- **Sections.** When a section of the page becomes the one you are reading,
  a counter for that section goes up. Nothing ties it to you.
- **Do Not Track.** If your browser sends ` + "`DNT: 1`" + `, no visit is recorded.
- **Retention.** Visit records are deleted after twelve months.

The theme you pick and the open state of the menu live only as long as the
page you are looking at. Reloading resets them.
`

// renderMarkdown converts trusted, compiled-in markdown to HTML.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
