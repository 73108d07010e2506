package host

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pb"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

const askTimeout = 5 * time.Second

func testConfig() *simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.NumParticles = 12
	cfg.StopAfter = 0
	cfg.TrackEvery = 1
	return cfg
}

func spawnSwarm(t *testing.T, cfg *simulation.Config, snapshotCh chan<- *pb.Snapshot) (context.Context, *actor.PID) {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("SwarmTest", actor.WithLogger(golog.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })

	engine, err := simulation.NewEngine(cfg)
	require.NoError(t, err)
	pid, err := system.Spawn(ctx, "swarm", NewSwarmActor(engine, snapshotCh))
	require.NoError(t, err)
	return ctx, pid
}

func snapshot(t *testing.T, ctx context.Context, pid *actor.PID) *pb.Snapshot {
	t.Helper()
	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, askTimeout)
	require.NoError(t, err)
	s, ok := resp.(*pb.Snapshot)
	require.True(t, ok, "unexpected response %T", resp)
	return s
}

func replace(t *testing.T, ctx context.Context, pid *actor.PID, msg proto.Message) *pb.MatrixReplaced {
	t.Helper()
	resp, err := actor.Ask(ctx, pid, msg, askTimeout)
	require.NoError(t, err)
	r, ok := resp.(*pb.MatrixReplaced)
	require.True(t, ok, "unexpected response %T", resp)
	return r
}

func TestSwarmActor_TickAndSnapshot(t *testing.T) {
	ctx, pid := spawnSwarm(t, testConfig(), nil)

	s := snapshot(t, ctx, pid)
	assert.Equal(t, uint64(0), s.GetStep())
	assert.Nil(t, s.GetOrder(), "no order parameter before the first step")
	require.Len(t, s.GetParticles(), 12)

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 5}))
	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{}))

	s = snapshot(t, ctx, pid)
	assert.Equal(t, uint64(6), s.GetStep())
	assert.False(t, s.GetStopReached())
	require.NotNil(t, s.GetOrder())
	assert.Greater(t, s.GetOrder().GetX(), 0.0)

	for i, p := range s.GetParticles() {
		assert.Equal(t, int32(i+1), p.GetId())
	}
	assert.Equal(t, int32(0), s.GetParticles()[0].GetType())
	assert.Equal(t, int32(1), s.GetParticles()[11].GetType())

	require.Len(t, s.GetMatrix(), 2)
	assert.Equal(t, []float64{0.8, interaction.DefaultABPM.P + interaction.DefaultABPM.M}, s.GetMatrix()[0].GetValues())
}

func TestSwarmActor_ReplaceMatrix(t *testing.T) {
	ctx, pid := spawnSwarm(t, testConfig(), nil)

	r := replace(t, ctx, pid, &pb.ReplaceMatrix{Rows: []*pb.MatrixRow{
		{Values: []float64{1, 2, 3}},
		{Values: []float64{4, 5, 6}},
		{Values: []float64{7, 8, 9}},
	}})
	assert.False(t, r.GetAccepted())
	assert.Contains(t, r.GetReason(), interaction.ErrDimensionMismatch.Error())
	assert.Equal(t, uint64(0), r.GetChangeCount())

	r = replace(t, ctx, pid, &pb.ReplaceMatrix{Rows: []*pb.MatrixRow{
		{Values: []float64{1, 2}},
		{Values: []float64{3}},
	}})
	assert.False(t, r.GetAccepted())
	assert.Contains(t, r.GetReason(), interaction.ErrNonSquare.Error())

	r = replace(t, ctx, pid, &pb.ReplaceMatrix{Rows: []*pb.MatrixRow{
		{Values: []float64{1, -1}},
		{Values: []float64{0.5, 2}},
	}})
	assert.True(t, r.GetAccepted())
	assert.Empty(t, r.GetReason())
	assert.Equal(t, uint64(1), r.GetChangeCount())

	s := snapshot(t, ctx, pid)
	assert.Equal(t, []float64{0.5, 2}, s.GetMatrix()[1].GetValues())
	assert.Equal(t, uint64(1), s.GetMatrixChangeCount())
}

func TestSwarmActor_ReplaceABPMWithRestart(t *testing.T) {
	ctx, pid := spawnSwarm(t, testConfig(), nil)
	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 4}))

	r := replace(t, ctx, pid, &pb.ReplaceABPM{A: 1, B: 1, P: 0.2, M: 0.3})
	require.True(t, r.GetAccepted())
	assert.Equal(t, uint64(4), snapshot(t, ctx, pid).GetStep(), "without restart the swarm keeps going")

	r = replace(t, ctx, pid, &pb.ReplaceABPM{A: 1, B: 1, P: 0.2, M: -0.3, Restart: true})
	require.True(t, r.GetAccepted())
	assert.Equal(t, uint64(2), r.GetChangeCount())

	s := snapshot(t, ctx, pid)
	assert.Equal(t, uint64(0), s.GetStep())
	assert.Nil(t, s.GetOrder())
	assert.InDelta(t, 0.5, s.GetMatrix()[1].GetValues()[0], 1e-12)
}

func TestSwarmActor_StopsAtMilestone(t *testing.T) {
	cfg := testConfig()
	cfg.StopAfter = 3
	ctx, pid := spawnSwarm(t, cfg, nil)

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 10}))
	s := snapshot(t, ctx, pid)
	assert.Equal(t, uint64(3), s.GetStep())
	assert.True(t, s.GetStopReached())

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 10}))
	assert.Equal(t, uint64(3), snapshot(t, ctx, pid).GetStep())

	require.NoError(t, actor.Tell(ctx, pid, &pb.ResetSwarm{}))
	s = snapshot(t, ctx, pid)
	assert.Equal(t, uint64(0), s.GetStep())
	assert.False(t, s.GetStopReached())

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 2}))
	assert.Equal(t, uint64(2), snapshot(t, ctx, pid).GetStep())
}

func TestSwarmActor_PushesSnapshots(t *testing.T) {
	snapshotCh := make(chan *pb.Snapshot, 1)
	ctx, pid := spawnSwarm(t, testConfig(), snapshotCh)

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 2}))
	select {
	case s := <-snapshotCh:
		assert.Equal(t, uint64(2), s.GetStep())
	case <-time.After(askTimeout):
		t.Fatal("no snapshot pushed")
	}

	// a full channel never blocks the actor
	for i := 0; i < 5; i++ {
		require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{}))
	}
	assert.Equal(t, uint64(7), snapshot(t, ctx, pid).GetStep())
}

func TestDiagnostics_Handle(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(golog.New(golog.InfoLevel, &buf))

	cfg := testConfig()
	cfg.ReportEvery = 2
	cfg.MatrixReportEvery = 3
	cfg.StopAfter = 3
	e, err := simulation.NewEngine(cfg)
	require.NoError(t, err)
	require.NoError(t, e.ApplySource(interaction.DefaultABPM, false))
	require.NoError(t, e.ApplySource(interaction.DefaultABPM, false))

	d.Handle(e, e.Step())
	assert.Equal(t, uint64(2), e.MatrixChangeCount(), "counter survives until the report")
	d.Handle(e, e.Step())
	assert.Equal(t, uint64(0), e.MatrixChangeCount())
	d.Handle(e, e.Step())

	out := buf.String()
	assert.Contains(t, out, "matrix replaced 2 times")
	assert.Contains(t, out, "coefficient matrix")
	assert.Contains(t, out, "stop reached")
}
