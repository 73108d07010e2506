package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/internal/host"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/internal/plot"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pb"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

const (
	fieldSize    = 640
	panelWidth   = 280
	screenWidth  = fieldSize + panelWidth
	screenHeight = fieldSize

	plotSize   = 200
	plotMaxLog = 3.5 // log10(1000·X+1) rarely goes past this
	askTimeout = 2 * time.Second
)

var typeColors = []color.RGBA{
	{R: 255, G: 60, B: 60, A: 255},
	{R: 60, G: 120, B: 255, A: 255},
	{R: 60, G: 220, B: 90, A: 255},
	{R: 240, G: 200, B: 40, A: 255},
	{R: 200, G: 90, B: 230, A: 255},
	{R: 40, G: 220, B: 220, A: 255},
}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	swarmPID   *actor.PID
	snapshotCh chan *pb.Snapshot
	lastState  *pb.Snapshot
	ticking    bool // a Tick is in flight, wait for its snapshot

	cfg    *simulation.Config
	torus  geometry.Torus
	plot   *plot.LogPlot
	seed   uint64
	status string

	panel   *ui.Panel
	sliderA *ui.Slider
	sliderB *ui.Slider
	sliderP *ui.Slider
	sliderM *ui.Slider
	pause   *ui.Checkbox
	wrap    *ui.Checkbox
	grid    *ui.Checkbox
}

func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	engine, err := simulation.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	snapshotCh := make(chan *pb.Snapshot, 10) // Buffer to avoid blocking
	pid, err := system.Spawn(ctx, "swarm", host.NewSwarmActor(engine, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn swarm: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		swarmPID:   pid,
		snapshotCh: snapshotCh,
		lastState:  &pb.Snapshot{}, // Avoid nil pointer
		cfg:        cfg,
		torus:      engine.Swarm().Torus(),
		plot:       plot.NewLogPlot(),
		seed:       cfg.Seed,
	}

	g.panel = ui.NewPanel(fieldSize+5, 5, panelWidth-10, screenHeight-plotSize-20, "Coefficients")
	if cfg.TypeCount == 2 {
		in := cfg.Interaction
		if in.Scheme != simulation.SchemeABPM {
			in.A, in.B, in.P, in.M = interaction.DefaultABPM.A, interaction.DefaultABPM.B, interaction.DefaultABPM.P, interaction.DefaultABPM.M
		}
		g.panel.AddSection("K = [[A, P+M], [P-M, B]]")
		g.sliderA = g.panel.AddSlider("A", -2, 2, in.A)
		g.sliderB = g.panel.AddSlider("B", -2, 2, in.B)
		g.sliderP = g.panel.AddSlider("P", -2, 2, in.P)
		g.sliderM = g.panel.AddSlider("M", -2, 2, in.M)
		g.panel.AddButton("Update", g.applyABPM)
	}
	g.panel.AddSection("Swarm")
	g.panel.AddButton("Random", g.randomMatrix)
	g.panel.AddButton("Reset", g.reset)
	g.pause = g.panel.AddCheckbox("Pause", false)
	g.wrap = g.panel.AddCheckbox("Wrap into one cell", true)
	g.grid = g.panel.AddCheckbox("Cell grid", true)
	return g, nil
}

func (g *Game) applyABPM() {
	msg := &pb.ReplaceABPM{
		A:       g.sliderA.Value,
		B:       g.sliderB.Value,
		P:       g.sliderP.Value,
		M:       g.sliderM.Value,
		Restart: true,
	}
	if g.replace(msg) {
		g.plot.Clear()
	}
}

func (g *Game) randomMatrix() {
	g.seed++
	m, err := interaction.Random{Min: g.cfg.Interaction.RandomMin, Max: g.cfg.Interaction.RandomMax, Seed: g.seed}.Resolve(g.cfg.TypeCount)
	if err != nil {
		g.status = err.Error()
		return
	}
	rows := make([]*pb.MatrixRow, 0, m.Size())
	for _, r := range m.Rows() {
		rows = append(rows, &pb.MatrixRow{Values: r})
	}
	if g.replace(&pb.ReplaceMatrix{Rows: rows}) {
		g.reset()
	}
}

// replace asks the swarm to swap its matrix and reports whether it was accepted.
func (g *Game) replace(msg proto.Message) bool {
	resp, err := actor.Ask(g.ctx, g.swarmPID, msg, askTimeout)
	if err != nil {
		g.status = err.Error()
		return false
	}
	r, ok := resp.(*pb.MatrixReplaced)
	if !ok {
		g.status = fmt.Sprintf("unexpected reply %T", resp)
		return false
	}
	if !r.GetAccepted() {
		g.status = "rejected: " + r.GetReason()
		return false
	}
	g.status = ""
	return true
}

func (g *Game) reset() {
	if err := actor.Tell(g.ctx, g.swarmPID, &pb.ResetSwarm{}); err != nil {
		g.status = fmt.Sprintf("reset failed: %v", err)
		return
	}
	g.status = ""
	g.plot.Clear()
}

func (g *Game) Update() error {
	g.panel.Update()

	// Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.observe(snap)
		g.ticking = false
	default:
	}

	if g.ticking || g.pause.Value || g.lastState.GetStopReached() {
		return nil
	}
	g.ticking = true
	return actor.Tell(g.ctx, g.swarmPID, &pb.Tick{Steps: g.cfg.StepsPerFrame})
}

func (g *Game) observe(snap *pb.Snapshot) {
	if snap.GetStep() < g.lastState.GetStep() {
		g.plot.Clear()
	}
	if o := snap.GetOrder(); o != nil && snap.GetStep() != g.lastState.GetStep() {
		g.plot.Add(simulation.PlotPoint{X: o.GetLogX(), Y: o.GetLogV()})
	}
	g.lastState = snap
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	if g.grid.Value {
		g.drawGrid(screen)
	}
	g.drawParticles(screen)
	g.panel.Draw(screen)
	g.drawPlot(screen)
	g.drawStats(screen)
}

// fieldCentre is the screen position of the domain origin.
var fieldCentre = geometry.Vector2D{X: fieldSize / 2, Y: fieldSize / 2}

// toScreen maps a domain position to the field, origin at the centre.
func (g *Game) toScreen(v geometry.Vector2D) (float32, float32) {
	s := v.Mul(g.cfg.Scale).Add(fieldCentre)
	return float32(s.X), float32(s.Y)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	clr := color.RGBA{R: 70, G: 70, B: 80, A: 255}
	cell := g.torus.L * g.cfg.Scale
	if cell < 4 {
		return
	}
	start := fieldSize/2 - cell/2
	for start > 0 {
		start -= cell
	}
	for p := start; p < fieldSize; p += cell {
		vector.StrokeLine(screen, float32(p), 0, float32(p), fieldSize, 1, clr, true)
		vector.StrokeLine(screen, 0, float32(p), fieldSize, float32(p), 1, clr, true)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	radius := float32(max(g.cfg.Scale/2, 1.5))
	for _, p := range g.lastState.GetParticles() {
		pos := geometry.Vector2D{X: p.GetX(), Y: p.GetY()}
		if g.wrap.Value {
			pos = g.torus.Wrap(pos)
		}
		x, y := g.toScreen(pos)
		if x < -radius || x > fieldSize+radius || y < -radius || y > fieldSize+radius {
			continue
		}
		clr := typeColors[int(p.GetType())%len(typeColors)]
		vector.FillCircle(screen, x, y, radius, clr, true)
	}
}

func (g *Game) drawPlot(screen *ebiten.Image) {
	x0 := float32(fieldSize + 10)
	y0 := float32(screenHeight - plotSize - 10)
	size := float32(plotSize)

	vector.FillRect(screen, x0, y0, size+60, size, color.RGBA{R: 25, G: 25, B: 35, A: 255}, true)
	vector.StrokeRect(screen, x0, y0, size+60, size, 1, color.RGBA{R: 100, G: 100, B: 110, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, "V/X log-log", int(x0)+4, int(y0)+2)

	scaleX := (size + 50) / plotMaxLog
	scaleY := (size - 20) / plotMaxLog
	for _, p := range g.plot.Points() {
		px := x0 + 5 + float32(min(p.X, plotMaxLog))*scaleX
		py := y0 + size - 5 - float32(min(p.Y, plotMaxLog))*scaleY
		vector.FillRect(screen, px-1, py-1, 2, 2, color.RGBA{R: 120, G: 200, B: 255, A: 255}, false)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	msg := fmt.Sprintf("step %d  changes %d  FPS %.0f", g.lastState.GetStep(), g.lastState.GetMatrixChangeCount(), ebiten.ActualFPS())
	if o := g.lastState.GetOrder(); o != nil {
		msg += fmt.Sprintf("\nX %.4g  V %.4g", o.GetX(), o.GetV())
	}
	if g.lastState.GetStopReached() {
		msg += "\nstopped, press Reset to run again"
	}
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return screenWidth, screenHeight }
