package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

// RenderReport renders the analysis of s as a styled panel.
func RenderReport(s *scene.Scene) string {
	rep := scene.Analyze(s)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(strings.ToUpper(s.Name)) + "\n\n")

	if len(rep.Vectors) == 0 {
		b.WriteString(Subtle.Render("  (no vectors)") + "\n")
		return GlassPanel.Render(b.String())
	}

	width := 1
	for _, v := range rep.Vectors {
		width = max(width, len(v.Name))
	}

	for _, v := range rep.Vectors {
		swatch := " "
		if c, ok := s.ColorOf(v.Name); ok {
			swatch = Swatch(c.Hex())
		}
		unit := Subtle.Render("undefined")
		if v.Valid {
			unit = MetricValue.Render(FormatVec(v.Unit))
		}
		fmt.Fprintf(&b, "%s %-*s %s  %s %s  %s %s\n",
			swatch, width, v.Name,
			MetricValue.Render(v.Value.String()),
			MetricLabel.Render("|v|"), MetricValue.Render(fmt.Sprintf("%.4g", v.Magnitude)),
			MetricLabel.Render("unit"), unit)
	}

	if len(rep.Pairs) > 0 {
		b.WriteString("\n" + Title.Render("PRODUCTS") + "\n")
		for _, p := range rep.Pairs {
			pair := fmt.Sprintf("%s,%s", p.A, p.B)
			fmt.Fprintf(&b, "  %-*s %s %s  %s %s  %s %s\n",
				2*width+1, pair,
				MetricLabel.Render("dot"), MetricValue.Render(fmt.Sprintf("%.4g", p.Dot)),
				MetricLabel.Render("cross"), MetricValue.Render(FormatVec(p.Cross)),
				MetricLabel.Render("angle"), MetricValue.Render(formatAngle(p.Angle)))
		}
	}

	return GlassPanel.Render(strings.TrimRight(b.String(), "\n"))
}

// FormatVec renders v with three decimals, in the same vec3(...) shape as String.
func FormatVec(v vector.Vec3d) string {
	return fmt.Sprintf("vec3(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func formatAngle(rad float64) string {
	if math.IsNaN(rad) {
		return "undefined"
	}
	return fmt.Sprintf("%.1f°", rad*180/math.Pi)
}
