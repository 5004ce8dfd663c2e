package viz

import (
	"math"
	"sort"

	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

// Camera rotates world points about the origin and projects them with a
// pinhole at distance Dist on the +z axis.
type Camera struct {
	RotX, RotY float64
	Zoom       float64
	Dist       float64
	Near       float64
}

func NewCamera() *Camera {
	c := &Camera{Dist: 5, Near: 0.1}
	c.Reset(1)
	return c
}

// Reset restores the default oblique view, scaled so that points at distance
// extent from the origin stay inside the frame.
func (c *Camera) Reset(extent float64) {
	c.RotX, c.RotY = 0.45, -0.7
	c.Zoom = 1 / math.Max(extent, 1e-9)
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom *= 1.2 }
func (c *Camera) ZoomOut()          { c.Zoom /= 1.2 }

// RotatePoint applies the yaw (RotY) then the pitch (RotX).
func (c *Camera) RotatePoint(p vector.Vec3d) vector.Vec3d {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project converts world coordinates to screen coordinates for a screen of
// sw x sh pixels. Returns x, y, depth, and visibility.
func (c *Camera) Project(p vector.Vec3d, sw, sh int) (int, int, float64, bool) {
	x, y, depth, front := c.screen(p, sw, sh)
	return x, y, depth, front && x >= 0 && x < sw && y >= 0 && y < sh
}

// screen is Project without the frame test; front is false for points
// behind the near plane.
func (c *Camera) screen(p vector.Vec3d, sw, sh int) (x, y int, depth float64, front bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Dist-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Dist / (c.Dist - rot.Z)
	pScale := math.Min(float64(sw), float64(sh)) / 2.5
	x = int(math.Round(rot.X*scale*pScale)) + sw/2
	y = int(math.Round(-rot.Y*scale*pScale)) + sh/2
	return x, y, rot.Z, true
}

type ProjectedArrow struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Label          string
	Color          scene.Color
}

// ProjectScene projects every arrow of s, farthest first. Arrows with an
// endpoint behind the camera are skipped.
func ProjectScene(s *scene.Scene, cam *Camera, sw, sh int) []ProjectedArrow {
	out := make([]ProjectedArrow, 0, len(s.Arrows))
	for _, a := range s.Arrows {
		tail, head := s.Segment(a)
		x1, y1, d1, ok1 := cam.screen(tail, sw, sh)
		x2, y2, d2, ok2 := cam.screen(head, sw, sh)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, ProjectedArrow{x1, y1, x2, y2, (d1 + d2) / 2, a.To, a.Color})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Render3D draws the scene to the canvas and labels each arrow head.
func Render3D(c *Canvas, s *scene.Scene, cam *Camera) {
	if c == nil || s == nil || cam == nil {
		return
	}
	sw, sh := c.PixelSize()
	arrows := ProjectScene(s, cam, sw, sh)
	for _, a := range arrows {
		c.DrawLine(a.X1, a.Y1, a.X2, a.Y2)
	}
	for _, a := range arrows {
		c.Label(a.X2+2, a.Y2, a.Label)
	}
}
