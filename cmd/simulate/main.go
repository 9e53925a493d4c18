// Command simulate runs a scene without a window and prints a yaml snapshot
// of the final state.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/icmeyer/boing/physics"
	"github.com/icmeyer/boing/prefabs"
)

type options struct {
	scene string
	ticks int
	dt    float64
	every int
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "default", "scene name in prefabs/ (basename, .yaml optional)")
	flag.IntVar(&opts.ticks, "ticks", 5*physics.TickRate, "number of steps to run")
	flag.Float64Var(&opts.dt, "dt", 1.0/physics.TickRate, "step length in seconds")
	flag.IntVar(&opts.every, "every", physics.TickRate, "log a step report every n ticks (0 disables)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, out io.Writer, logger *log.Logger) error {
	if opts.ticks < 0 {
		return fmt.Errorf("simulate: ticks must not be negative, got %d", opts.ticks)
	}
	if opts.dt < 0 {
		return fmt.Errorf("simulate: dt must not be negative, got %g", opts.dt)
	}

	loadCtx, cancel := context.WithTimeout(ctx, prefabs.LoadTimeout)
	spec, err := prefabs.LoadScene(loadCtx, opts.scene)
	cancel()
	if err != nil {
		return err
	}
	scene, err := spec.Scene()
	if err != nil {
		return err
	}
	logger.Printf("simulate: scene %q: %d bodies, dt %g", spec.Name, len(scene.Shapes), opts.dt)

	var total physics.StepReport
	tick := 0
	for ; tick < opts.ticks; tick++ {
		if err := ctx.Err(); err != nil {
			logger.Printf("simulate: stopped at tick %d: %v", tick, err)
			break
		}
		r := physics.Advance(scene, opts.dt)
		total.Collisions += r.Collisions
		total.Coincident += r.Coincident
		total.Massless += r.Massless
		total.Moved += r.Moved
		total.Unbound += r.Unbound
		if opts.every > 0 && (tick+1)%opts.every == 0 {
			logger.Printf("simulate: tick %d: %+v", tick+1, r)
		}
	}
	logger.Printf("simulate: done after %d ticks: %+v", tick, total)

	data, err := prefabs.NewSnapshot(spec.Name, uint64(tick), scene).Marshal()
	if err != nil {
		return fmt.Errorf("simulate: snapshot: %w", err)
	}
	_, err = out.Write(data)
	return err
}
