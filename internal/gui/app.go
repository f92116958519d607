package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bitleak/internal/config"
	"github.com/san-kum/bitleak/internal/script"
	"github.com/san-kum/bitleak/internal/trail"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColButton  = rl.NewColor(30, 30, 30, 255)
	ColHover   = rl.NewColor(50, 50, 50, 255)
)

var glyphColors = map[string]rl.Color{
	"matrix": rl.NewColor(51, 204, 51, 255),
	"amber":  rl.NewColor(255, 140, 0, 255),
	"ice":    rl.NewColor(77, 166, 255, 255),
	"mono":   rl.NewColor(230, 230, 230, 255),
}

type App struct {
	Cfg      *config.Config
	Effect   *trail.EffectController
	Queue    *trail.FrameQueue
	Surface  *Surface
	Input    *Input
	Button   *Button
	Recorder *script.Recorder
	Seed     int64
	Font     rl.Font
	Glyph    rl.Color
	ShowHUD  bool
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Display.WindowWidth), int32(cfg.Display.WindowHeight), "bitleak")
	rl.SetTargetFPS(int32(cfg.Display.FPS))
	rl.SetExitKey(rl.KeyQ)
}

// loadFont loads Liberation Mono when installed and raylib's built-in font
// otherwise.
func loadFont() rl.Font {
	if !rl.FileExists(fontPath) {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 64, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds and mounts the effect. The window must already be open.
func NewApp(cfg *config.Config, record bool) *App {
	glyph, ok := glyphColors[cfg.Display.Theme]
	if !ok {
		glyph = glyphColors[config.DefaultTheme]
	}
	a := &App{
		Cfg:     cfg,
		Queue:   trail.NewFrameQueue(),
		Surface: NewSurface(),
		Input:   &Input{},
		Button:  &Button{},
		Font:    loadFont(),
		Glyph:   glyph,
		ShowHUD: true,
		Seed:    trail.ResolveSeed(cfg.Seed),
	}

	var src trail.InputSource = a.Input
	if record {
		a.Recorder = script.NewRecorder(a.Input, now)
		src = a.Recorder
	}

	a.Effect = trail.New(trail.Options{
		Tuning:    cfg.Tuning(),
		Random:    trail.NewSource(a.Seed),
		Surface:   a.Surface,
		Scheduler: a.Queue,
		Input:     src,
		Control:   a.Button,
		Viewport: trail.Point{
			X: float64(rl.GetScreenWidth()),
			Y: float64(rl.GetScreenHeight()),
		},
	})
	a.Effect.Mount()
	return a
}

// Run opens the window and blocks until it is closed. When record is set,
// the returned script holds the session's input.
func Run(cfg *config.Config, record bool) (*script.Script, error) {
	initWindow(cfg)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("window host: could not open window")
	}
	app := NewApp(cfg, record)
	app.RunLoop()
	return app.Recording("window session"), nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Recording returns the recorded input, or nil when not recording.
func (a *App) Recording(name string) *script.Script {
	if a.Recorder == nil {
		return nil
	}
	viewport := trail.Point{X: float64(rl.GetScreenWidth()), Y: float64(rl.GetScreenHeight())}
	return a.Recorder.Script(name, a.Seed, a.Cfg.Display.FPS, viewport)
}

func (a *App) Update() {
	a.Button.Layout(a.Font, a.Cfg.Display.FontSize)

	clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft) &&
		rl.CheckCollisionPointRec(rl.GetMousePosition(), a.Button.Rect)
	if clicked || rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		a.activate()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	if !clicked {
		a.Input.Poll(sample())
	}

	if a.Queue.Pending() > 0 {
		a.Queue.Flush(now())
	}
}

func (a *App) activate() {
	if a.Recorder != nil {
		a.Recorder.Toggle()
	}
	a.Button.Activate()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Surface.Draw(a.Font, a.Cfg.Display.FontSize, a.Glyph)
	a.Button.Draw(a.Font, a.Cfg.Display.FontSize)
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	size := int(a.Cfg.Display.FontSize * 0.6)
	x := int(a.Button.Rect.X + a.Button.Rect.Width + 16)
	y := int(a.Button.Rect.Y + (a.Button.Rect.Height-float32(size))/2)

	hud := fmt.Sprintf("live %d  frames %d  fps %d", a.Effect.Particles().Len(), a.Effect.Driver().Frames(), rl.GetFPS())
	if a.Recorder != nil {
		hud += fmt.Sprintf("  REC %d", a.Recorder.Len())
	}
	a.drawText(hud, x, y, size, ColText)
	a.drawText("SPACE toggle  H hud  Q quit", 16, rl.GetScreenHeight()-size-12, size, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// now is the raylib clock in milliseconds.
func now() float64 {
	return rl.GetTime() * 1000
}
