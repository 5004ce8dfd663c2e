package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/galileo/internal/config"
	"github.com/san-kum/galileo/internal/integrators"
	"github.com/san-kum/galileo/internal/motion"
	"github.com/san-kum/galileo/internal/rlvec"
	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

var (
	ColText    = rl.NewColor(40, 40, 40, 255)
	ColTextDim = rl.NewColor(130, 130, 130, 255)
)

const headRadius = 0.06

// spinner advances one scene vector with a fixed step, fed by frame time.
type spinner struct {
	name  string
	x0    vector.Vec3d
	x     vector.Vec3d
	sys   motion.Spin
	integ motion.Integrator
	dt    float64
	acc   float64
	t     float64
}

func (sp *spinner) advance(frame float64) {
	sp.acc += frame
	for sp.acc >= sp.dt {
		sp.x = sp.integ.Step(sp.sys, sp.x, sp.t, sp.dt)
		sp.t += sp.dt
		sp.acc -= sp.dt
	}
}

type App struct {
	Scene   *scene.Scene
	Camera  rl.Camera3D
	Grid    config.GridConfig
	Title   string
	Running bool
	Labels  bool

	spin *spinner
}

func cameraFrom(cc config.CameraConfig) (rl.Camera3D, error) {
	pos, err := config.Vec3(cc.Position)
	if err != nil {
		return rl.Camera3D{}, fmt.Errorf("camera position: %w", err)
	}
	target, err := config.Vec3(cc.Target)
	if err != nil {
		return rl.Camera3D{}, fmt.Errorf("camera target: %w", err)
	}
	up, err := config.Vec3(cc.Up)
	if err != nil {
		return rl.Camera3D{}, fmt.Errorf("camera up: %w", err)
	}
	return rl.NewCamera3D(
		rlvec.Vector3From3(pos),
		rlvec.Vector3From3(target),
		rlvec.Vector3From3(up),
		float32(cc.Fovy),
		rl.CameraPerspective,
	), nil
}

// NewApp prepares the scene and camera. With spin set, the configured spin
// vector rotates about its axis while the window runs.
func NewApp(cfg *config.Config, s *scene.Scene, spin bool) (*App, error) {
	cam, err := cameraFrom(cfg.Camera)
	if err != nil {
		return nil, err
	}

	app := &App{
		Scene:   s,
		Camera:  cam,
		Grid:    cfg.Grid,
		Title:   cfg.Window.Title,
		Running: spin,
		Labels:  true,
	}

	if spin {
		sp, err := newSpinner(cfg.Spin, s)
		if err != nil {
			return nil, err
		}
		app.spin = sp
	}
	return app, nil
}

func newSpinner(sc config.SpinConfig, s *scene.Scene) (*spinner, error) {
	sys, mcfg, err := sc.Motion()
	if err != nil {
		return nil, err
	}
	x0, err := sc.Target(s)
	if err != nil {
		return nil, err
	}
	integ, err := integrators.New(sc.Integrator)
	if err != nil {
		return nil, err
	}
	return &spinner{
		name:  sc.Vector,
		x0:    x0,
		x:     x0,
		sys:   sys,
		integ: integ,
		dt:    mcfg.Dt,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, s *scene.Scene, spin bool) error {
	app, err := NewApp(cfg, s, spin)
	if err != nil {
		return err
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.DisableCursor()

	return app.RunLoop()
}

func (a *App) RunLoop() error {
	for !rl.WindowShouldClose() {
		if err := a.Update(); err != nil {
			return err
		}
		a.Draw()
	}
	return nil
}

func (a *App) Update() error {
	rl.UpdateCamera(&a.Camera, rl.CameraOrbital)

	if rl.IsKeyPressed(rl.KeyL) {
		a.Labels = !a.Labels
	}
	if a.spin == nil {
		return nil
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.spin.x, a.spin.t, a.spin.acc = a.spin.x0, 0, 0
	} else if a.Running {
		a.spin.advance(float64(rl.GetFrameTime()))
	}
	return a.Scene.Set(a.spin.name, a.spin.x)
}

func color(c scene.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	rl.BeginMode3D(a.Camera)
	rl.DrawGrid(int32(a.Grid.Slices), float32(a.Grid.Spacing))
	for _, arrow := range a.Scene.Arrows {
		tail, head := a.Scene.Segment(arrow)
		from, to := rlvec.Vector3From3(tail), rlvec.Vector3From3(head)
		rl.DrawLine3D(from, to, color(arrow.Color))
		rl.DrawSphere(to, headRadius, color(arrow.Color))
	}
	rl.EndMode3D()

	if a.Labels {
		a.drawLabels()
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawLabels() {
	for _, n := range a.Scene.Vectors() {
		p := rl.GetWorldToScreen(rlvec.Vector3From3(n.Value), a.Camera)
		col := ColText
		if c, ok := a.Scene.ColorOf(n.Name); ok {
			col = color(c)
		}
		rl.DrawText(n.Name, int32(p.X)+6, int32(p.Y)-6, 18, col)
	}
}

func (a *App) DrawHUD() {
	rl.DrawText(a.Title, 20, 20, 24, ColText)
	cam := rlvec.FromVector3(a.Camera.Position)
	rl.DrawText(fmt.Sprintf("camera %s", cam), 20, 52, 14, ColTextDim)

	if a.spin != nil {
		status := "SPINNING"
		if !a.Running {
			status = "PAUSED"
		}
		rl.DrawText(fmt.Sprintf("%s %s  |%s| = %.4f  t = %.2f",
			status, a.spin.name, a.spin.name, a.spin.x.Magnitude(), a.spin.t), 20, 72, 14, ColTextDim)
		rl.DrawText("[SPACE] PAUSE  [R] RESET  [L] LABELS  [ESC] QUIT", 20, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
		return
	}
	rl.DrawText("[L] LABELS  [ESC] QUIT", 20, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
}
