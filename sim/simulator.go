// sim/simulator.go
package sim

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that owns the run clock, the event log, and
// the select/execute loop driving every loaded program to Exit.
type Simulator struct {
	Programs  []*Program
	Scheduler Scheduler
	Engine    *Engine
	Clock     *Clock
	Log       *EventLog
	Metrics   *Metrics
}

// NewSimulator wires a simulator for the given configuration and parsed
// programs. Event log lines go to dests; opening/closing the log file behind
// a dest is the caller's concern.
func NewSimulator(cfg *Config, programs []*Program, dests ...io.Writer) *Simulator {
	clock := NewClock()
	log := NewEventLog(clock, DefaultPrecision, dests...)
	metrics := NewMetrics()
	return &Simulator{
		Programs:  programs,
		Scheduler: NewScheduler(cfg.SchedulingCode),
		Engine:    NewEngine(log, metrics),
		Clock:     clock,
		Log:       log,
		Metrics:   metrics,
	}
}

// Run executes the whole simulation: prepare all programs, then repeatedly
// select one and drive it to completion until the ready set is empty.
//
// An empty program set produces only the starting/ending lines. A dispatch
// error aborts the run immediately; nothing is retried mid-run because the
// whole workload is known before execution begins.
func (s *Simulator) Run() error {
	s.Clock.Start()
	s.Log.Printf("Simulator program starting")

	if len(s.Programs) > 0 {
		s.Log.Printf("OS: preparing all processes")
		s.Scheduler.Prepare(s.Programs)

		for {
			p, ok := s.Scheduler.SelectNext()
			if !ok {
				break
			}
			s.Log.Printf("OS: selecting next process")
			selectedAt := s.Clock.Elapsed()

			if err := s.Engine.Run(p); err != nil {
				return err
			}
			p.State = StateExit
			s.Metrics.recordCompletion(p.ID, s.Clock.Elapsed()-selectedAt)
			logrus.Debugf("process %d exited after %s", p.ID, s.Clock.Elapsed()-selectedAt)
		}
	}

	s.Log.Printf("Simulator program ending")
	return nil
}
