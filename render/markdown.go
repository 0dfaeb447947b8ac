package render

import (
	"bytes"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// Markdown converts article/newsletter body text to HTML for detail
// responses. On conversion failure the raw source is returned unchanged.
func Markdown(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return source
	}
	return buf.String()
}
