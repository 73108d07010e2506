package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/internal/host"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/internal/plot"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file, defaults apply when empty")
	steps := flag.Uint64("steps", 0, "steps to run, 0 runs until the stopAfter milestone")
	pngFile := flag.String("plot", "", "write the V/X log-log plot to this PNG file")
	quiet := flag.Bool("quiet", false, "only log warnings")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *steps == 0 {
		*steps = cfg.StopAfter
	}
	if *steps == 0 {
		log.Fatal("nothing to run: set -steps or stopAfter")
	}

	level := golog.InfoLevel
	if *quiet {
		level = golog.WarningLevel
	}
	logger := golog.New(level, os.Stdout)
	diag := host.NewDiagnostics(logger)

	engine, err := simulation.NewEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}
	logger.Infof("running %d steps: %d particles, %d types, L=%g, dt=%g",
		*steps, cfg.NumParticles, cfg.TypeCount, cfg.DomainSize, cfg.TimeStep)
	logger.Infof("coefficient matrix\n%s", engine.Matrix())

	start := time.Now()
	for i := uint64(0); i < *steps; i++ {
		res := engine.Step()
		diag.Handle(engine, res)
		if res.Has(simulation.MilestoneStop) {
			break
		}
	}
	logger.Infof("%d steps in %s", engine.StepCount(), time.Since(start).Round(time.Millisecond))

	lp := plot.NewLogPlot()
	for _, p := range engine.History() {
		lp.Add(p)
	}
	if s, ok := engine.OrderParameterSample(); ok {
		fmt.Printf("final X=%.6g V=%.6g\n", s.X, s.V)
	}
	if spark := lp.Sparkline(60, 8); spark != "" {
		fmt.Println(spark)
	}

	if *pngFile != "" {
		if err := lp.SavePNG(*pngFile, 640, 480); err != nil {
			log.Fatal(err)
		}
		logger.Infof("plot written to %s", *pngFile)
	}
}
