package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/viz"
)

// SceneToSVG projects the arrows of s through cam onto a width x height image.
func SceneToSVG(s *scene.Scene, cam *viz.Camera, width, height int) string {
	if s == nil || cam == nil {
		return ""
	}

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<title>%s</title>
`, width, height, width, height, html.EscapeString(s.Name)))

	for _, a := range viz.ProjectScene(s, cam, width, height) {
		col := a.Color.Hex()
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>
`, a.X1, a.Y1, a.X2, a.Y2, col))
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="%s"/>
`, a.X2, a.Y2, col))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="monospace" font-size="12" fill="%s">%s</text>
`, a.X2+6, a.Y2-6, col, html.EscapeString(a.Label)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
