// generateHTML.go
package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/gogpu/gg"
)

// generateHTML wraps an SVG document in a minimal page centered on a
// background of the chart's color.
func generateHTML(svgDoc string, title string, background gg.RGBA) string {
	var htmlBuilder strings.Builder

	htmlBuilder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&htmlBuilder, "<title>%s</title>\n", html.EscapeString(title))
	htmlBuilder.WriteString("<style>\n")
	fmt.Fprintf(&htmlBuilder, "body { margin: 0; padding: 40px; background: %s; }\n", cssColor(background))
	htmlBuilder.WriteString(".chart-container { display: flex; justify-content: center; }\n")
	htmlBuilder.WriteString("</style>\n</head>\n<body>\n")
	htmlBuilder.WriteString("<div class=\"chart-container\">\n")
	htmlBuilder.WriteString(svgDoc)
	htmlBuilder.WriteString("</div>\n")
	htmlBuilder.WriteString("</body>\n</html>\n")

	return htmlBuilder.String()
}

func cssColor(c gg.RGBA) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5), c.A)
}
