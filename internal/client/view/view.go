// Package view is the ebiten adapter for the game: input goes to the
// controller, plot frames and hud lines come out as draw calls.
package view

import (
	"errors"
	"image/color"
	"trading_game/internal/client/controller"
	"trading_game/internal/client/hud"
	"trading_game/internal/game/bias"
	"trading_game/internal/game/plot"
	"trading_game/internal/game/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

const (
	hudHeight     = 130
	hudLineHeight = 16
	hudPadding    = 8
	noticeFrames  = 120
)

var (
	canvasBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudBackground    = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
)

var functionKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Game implements ebiten.Game.
type Game struct {
	ctrl *controller.Controller
	log  *zap.Logger
	vp   plot.Viewport

	notice      string
	noticeLeft  int
	labelImages map[string]*ebiten.Image
}

func NewGame(ctrl *controller.Controller, width, height int, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		ctrl:        ctrl,
		log:         log,
		vp:          plot.NewViewport(width, height),
		labelImages: make(map[string]*ebiten.Image),
	}
}

// WindowSize is the outer size including the hud panel.
func (g *Game) WindowSize() (int, int) {
	return int(g.vp.Width), int(g.vp.Height) + hudHeight
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()
	g.ctrl.Update()

	if g.noticeLeft > 0 {
		g.noticeLeft--
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.vp.ContainsX(float64(x)) && y >= 0 && float64(y) <= g.vp.Height {
			g.report(g.ctrl.Click())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.report(g.ctrl.Click())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePlayback()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.ctrl.ResetStats()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.report(g.ctrl.NewRandom())
	}
	for i, k := range functionKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.report(g.ctrl.SelectFunction(bias.Keys[i]))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.report(g.ctrl.StepDuration(1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.report(g.ctrl.StepDuration(-1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.report(g.ctrl.StepSpeed(0.1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.report(g.ctrl.StepSpeed(-0.1))
	}
}

// report Показывает отклоненное действие на панели пару секунд
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.log.Debug("action rejected", zap.Error(err))

	switch {
	case errors.Is(err, session.ErrRoundActive):
		g.notice = "Locked while a round is active"
	case errors.Is(err, session.ErrNotWaiting):
		g.notice = "Press R to start a new round"
	default:
		g.notice = err.Error()
	}
	g.noticeLeft = noticeFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(canvasBackground)

	fr := plot.Build(g.ctrl.Session(), g.ctrl.Function(), g.vp)
	g.drawFrame(screen, fr)
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

func (g *Game) drawFrame(screen *ebiten.Image, fr plot.Frame) {
	for _, c := range fr.Fills {
		clr := plot.BelowFill
		if c.Above {
			clr = plot.AboveFill
		}
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Top), 1, float32(c.Bot-c.Top), clr, false)
	}

	for _, l := range fr.Grid {
		strokeSegment(screen, l, 1, plot.GridColor)
	}

	for _, l := range fr.Labels {
		g.drawLabel(screen, l)
	}

	for _, d := range fr.ZeroLine {
		strokeSegment(screen, d, plot.ZeroLineWidth, plot.ZeroLineColor)
	}

	for i := 1; i < len(fr.Curve); i++ {
		strokeSegment(screen, plot.Segment{From: fr.Curve[i-1], To: fr.Curve[i]}, plot.CurveWidth, fr.CurveColor)
	}

	drawCircle(screen, fr.Marker, 2)

	if fr.Connector != nil {
		strokeSegment(screen, *fr.Connector, 2, plot.ConnectorColor)
	}
	if fr.Indicator != nil {
		drawCircle(screen, *fr.Indicator, 0)
	}
}

// drawLabel tints the white debug font with the label color; labels are
// right aligned to their anchor.
func (g *Game) drawLabel(screen *ebiten.Image, l plot.Label) {
	img, ok := g.labelImages[l.Text]
	if !ok {
		img = ebiten.NewImage(len(l.Text)*6, hudLineHeight)
		ebitenutil.DebugPrintAt(img, l.Text, 0, 0)
		g.labelImages[l.Text] = img
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.At.X-float64(w), l.At.Y-float64(h)/2)
	op.ColorScale.ScaleWithColor(plot.LabelColor)
	screen.DrawImage(img, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	top := float32(g.vp.Height)
	vector.DrawFilledRect(screen, 0, top, float32(g.vp.Width), hudHeight, hudBackground, false)

	snap := hud.Snapshot{
		Session:  g.ctrl.Session(),
		Function: g.ctrl.Function(),
		Stats:    g.ctrl.Stats(),
		StatsErr: g.ctrl.StatsErr(),
	}
	if g.noticeLeft > 0 {
		snap.Notice = g.notice
	}

	y := int(g.vp.Height) + hudPadding
	for _, line := range hud.Lines(snap) {
		ebitenutil.DebugPrintAt(screen, line, hudPadding, y)
		y += hudLineHeight
	}
}

func strokeSegment(screen *ebiten.Image, s plot.Segment, width float32, clr color.Color) {
	vector.StrokeLine(screen,
		float32(s.From.X), float32(s.From.Y),
		float32(s.To.X), float32(s.To.Y),
		width, clr, true)
}

func drawCircle(screen *ebiten.Image, c plot.Circle, strokeWidth float32) {
	cx, cy := float32(c.Center.X), float32(c.Center.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(c.Radius), c.Fill, true)
	if strokeWidth > 0 {
		vector.StrokeCircle(screen, cx, cy, float32(c.Radius), strokeWidth, c.Stroke, true)
	}
}
