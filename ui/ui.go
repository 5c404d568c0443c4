// Package ui renders a live terminal view of a run with tcell. It is a
// pure observer of the core: it paces ticks from its own timer, draws the
// latest snapshot, and never reaches into simulation internals.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/evolvewords/drift"
	"github.com/pthm-cable/evolvewords/evolve"
	"github.com/pthm-cable/evolvewords/telemetry"
)

// Key bindings shown in the footer.
const helpText = "space pause  r restart  q quit"

// App owns the terminal screen and the render/tick loop.
type App struct {
	screen tcell.Screen
	tick   time.Duration
	paused bool
	rang   bool
}

// New initializes the terminal screen. Callers must Close when done.
func New(tick time.Duration) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()
	return &App{screen: screen, tick: tick}, nil
}

// Close restores the terminal.
func (a *App) Close() {
	a.screen.Fini()
}

// TargetRun wires a target-mode driver to its collector. newRun is called
// on restart to build a fresh driver and collector pair.
type TargetRun struct {
	Driver    *evolve.Driver
	Collector *telemetry.Collector
	NewRun    func() (*evolve.Driver, *telemetry.Collector, error)
}

// RunTarget drives a target-mode run until the user quits, returning the
// collector of the last run (restarts swap in a fresh one). The simulation
// advances once per timer tick from this goroutine only; the event
// goroutine just forwards key presses, so ticks never overlap.
func (a *App) RunTarget(run TargetRun) (*telemetry.Collector, error) {
	events := a.eventChannel()
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			restart, quit := a.handleKey(ev)
			if quit {
				run.Driver.Stop()
				return run.Collector, nil
			}
			if restart && run.NewRun != nil {
				driver, collector, err := run.NewRun()
				if err != nil {
					return run.Collector, err
				}
				run.Driver, run.Collector = driver, collector
				a.rang = false
			}
			a.drawTarget(run.Driver.Snapshot(), run.Collector)

		case <-ticker.C:
			snap := run.Driver.Snapshot()
			if !a.paused && !run.Driver.Done() {
				snap = run.Driver.Tick()
			}
			if snap.Status == evolve.StatusConverged && !a.rang {
				a.screen.Beep()
				a.rang = true
			}
			a.drawTarget(snap, run.Collector)
		}
	}
}

// DriftRun wires a drift-mode pool to its collector.
type DriftRun struct {
	Pool      *drift.Pool
	Collector *telemetry.DriftCollector
	NewRun    func() (*drift.Pool, *telemetry.DriftCollector, error)
}

// RunDrift drives a drift-mode run until the user quits, returning the
// collector of the last run.
func (a *App) RunDrift(run DriftRun) (*telemetry.DriftCollector, error) {
	events := a.eventChannel()
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			restart, quit := a.handleKey(ev)
			if quit {
				return run.Collector, nil
			}
			if restart && run.NewRun != nil {
				pool, collector, err := run.NewRun()
				if err != nil {
					return run.Collector, err
				}
				run.Pool, run.Collector = pool, collector
				a.rang = false
			}
			a.drawDrift(run.Pool.Snapshot(), run.Collector)

		case <-ticker.C:
			if !a.paused && run.Pool.Status() == drift.Growing {
				run.Pool.Step()
				run.Collector.Record(run.Pool.Snapshot())
			}
			snap := run.Pool.Snapshot()
			if snap.Status != drift.Growing && !a.rang {
				a.screen.Beep()
				a.rang = true
			}
			a.drawDrift(snap, run.Collector)
		}
	}
}

// eventChannel forwards terminal events from a dedicated goroutine.
func (a *App) eventChannel() <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

// handleKey processes one event; returns restart and quit requests.
func (a *App) handleKey(ev tcell.Event) (restart, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false, true
			case ' ':
				a.paused = !a.paused
			case 'r':
				return true, false
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false, false
}
