// Package host runs a simulation engine inside a goakt actor. The mailbox serialises
// commands, so a matrix replacement or a reset always lands between two steps.
package host

import (
	"time"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pb"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// SwarmActor owns one Engine and drives it on Tick.
type SwarmActor struct {
	engine *simulation.Engine
	diag   *Diagnostics
	// Communication with UI, may be nil
	snapshotCh chan<- *pb.Snapshot
	stopped    bool

	// --- Benchmark Stats ---
	stepCount   int
	lastLogTime time.Time
}

// NewSwarmActor wraps engine. Snapshots are pushed on snapshotCh after every Tick,
// dropped when the receiver is busy.
func NewSwarmActor(engine *simulation.Engine, snapshotCh chan<- *pb.Snapshot) *SwarmActor {
	return &SwarmActor{
		engine:      engine,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (a *SwarmActor) PreStart(ctx *actor.Context) error {
	a.diag = NewDiagnostics(ctx.ActorSystem().Logger())
	return nil
}

func (a *SwarmActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		cfg := a.engine.Config()
		ctx.Logger().Infof("Swarm started: %d particles, %d types, L=%g, dt=%g",
			cfg.NumParticles, cfg.TypeCount, cfg.DomainSize, cfg.TimeStep)

	case *pb.Tick:
		a.advance(msg.GetSteps())
		a.logBenchmarks(ctx)
		a.pushSnapshot()

	case *pb.ReplaceMatrix:
		m, err := interaction.NewMatrix(rowsFromProto(msg.GetRows()))
		if err == nil {
			err = a.engine.ReplaceMatrix(m)
		}
		ctx.Response(a.replaced(ctx, err))

	case *pb.ReplaceABPM:
		src := interaction.ABPM{A: msg.GetA(), B: msg.GetB(), P: msg.GetP(), M: msg.GetM()}
		err := a.engine.ApplySource(src, msg.GetRestart())
		if err == nil && msg.GetRestart() {
			a.stopped = false
		}
		ctx.Response(a.replaced(ctx, err))

	case *pb.ResetSwarm:
		a.engine.Reset()
		a.stopped = false
		a.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(a.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (a *SwarmActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Swarm is shutdown after %d steps", a.engine.StepCount())
	return nil
}

// advance runs up to n steps (at least one) and stops early at the stop milestone.
func (a *SwarmActor) advance(n uint32) {
	if a.stopped {
		return
	}
	n = max(n, 1)
	for i := uint32(0); i < n; i++ {
		res := a.engine.Step()
		a.stepCount++
		a.diag.Handle(a.engine, res)
		if res.Has(simulation.MilestoneStop) {
			a.stopped = true
			return
		}
	}
}

func (a *SwarmActor) replaced(ctx *actor.ReceiveContext, err error) *pb.MatrixReplaced {
	if err != nil {
		ctx.Logger().Warnf("matrix replacement rejected: %v", err)
		return &pb.MatrixReplaced{Accepted: false, Reason: err.Error(), ChangeCount: a.engine.MatrixChangeCount()}
	}
	return &pb.MatrixReplaced{Accepted: true, ChangeCount: a.engine.MatrixChangeCount()}
}

func (a *SwarmActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(a.lastLogTime) >= time.Second {
		ctx.Logger().Debugf("STEP RATE: %d/sec | step %d", a.stepCount, a.engine.StepCount())
		a.stepCount = 0
		a.lastLogTime = time.Now()
	}
}

func (a *SwarmActor) pushSnapshot() {
	if a.snapshotCh == nil {
		return
	}
	select {
	case a.snapshotCh <- a.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (a *SwarmActor) buildSnapshot() *pb.Snapshot {
	particles := a.engine.Particles()
	snapshot := &pb.Snapshot{
		Step:              a.engine.StepCount(),
		Particles:         make([]*pb.Particle, 0, len(particles)),
		MatrixChangeCount: a.engine.MatrixChangeCount(),
		StopReached:       a.stopped,
		Matrix:            rowsToProto(a.engine.Matrix().Rows()),
	}
	for _, p := range particles {
		snapshot.Particles = append(snapshot.Particles, &pb.Particle{
			Id:   int32(p.ID),
			X:    p.Pos.X,
			Y:    p.Pos.Y,
			Type: int32(p.Type),
		})
	}
	if s, ok := a.engine.OrderParameterSample(); ok {
		plot := s.Plot()
		snapshot.Order = &pb.OrderParameter{X: s.X, V: s.V, LogX: plot.X, LogV: plot.Y}
	}
	return snapshot
}

func rowsFromProto(rows []*pb.MatrixRow) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = r.GetValues()
	}
	return out
}

func rowsToProto(rows [][]float64) []*pb.MatrixRow {
	out := make([]*pb.MatrixRow, len(rows))
	for i, r := range rows {
		out[i] = &pb.MatrixRow{Values: r}
	}
	return out
}
