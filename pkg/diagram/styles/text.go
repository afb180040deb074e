package styles

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes text for safe embedding in SVG output.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
