package host

import (
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	"github.com/tochemey/goakt/v3/log"
)

// Diagnostics turns step milestones into log lines.
type Diagnostics struct {
	logger log.Logger
}

// NewDiagnostics returns Diagnostics writing to logger, log.DiscardLogger when nil.
func NewDiagnostics(logger log.Logger) *Diagnostics {
	if logger == nil {
		logger = log.DiscardLogger
	}
	return &Diagnostics{logger: logger}
}

// Handle reports the milestones due in res. The change counter is logged then reset.
func (d *Diagnostics) Handle(e *simulation.Engine, res simulation.StepResult) {
	if res.DegeneratePairs > 0 {
		d.logger.Debugf("step %d: %d degenerate pairs", res.Step, res.DegeneratePairs)
	}
	if res.Has(simulation.MilestoneReportChanges) {
		d.logger.Infof("step %d: matrix replaced %d times", res.Step, e.MatrixChangeCount())
		e.ResetMatrixChangeCount()
	}
	if res.Has(simulation.MilestoneReportMatrix) {
		d.logger.Infof("step %d: coefficient matrix\n%s", res.Step, e.Matrix())
	}
	if res.Has(simulation.MilestoneStop) {
		sample := res.Sample
		d.logger.Infof("step %d: stop reached, X=%.6g V=%.6g", res.Step, sample.X, sample.V)
	}
}
