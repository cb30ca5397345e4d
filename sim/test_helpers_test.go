package sim

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fakeTime is a manual clock for tests: reading it returns a fixed instant,
// and its Sleep advances that instant instead of blocking. Wiring it into a
// Simulator makes every run instantaneous and its timestamps deterministic.
type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

func (f *fakeTime) Sleep(d time.Duration) {
	f.now = f.now.Add(d)
}

// newTestConfig returns a screen-only config with distinct per-resource cycle
// times so tests can tell resources apart by duration.
func newTestConfig() *Config {
	return &Config{
		SchedulingCode:     "FIFO",
		ProcessorCycleTime: 10,
		MonitorDisplayTime: 20,
		HardDriveCycleTime: 15,
		PrinterCycleTime:   25,
		KeyboardCycleTime:  50,
		LogLocation:        LogToScreen,
	}
}

// boundaryOp builds an A(start) or A(end) marker.
func boundaryOp(resource string) Operation {
	return Operation{Kind: KindBoundary, Resource: resource}
}

// testProgram builds a program framed by its boundary markers.
func testProgram(ops ...Operation) *Program {
	p := NewProgram()
	p.Enqueue(boundaryOp("start"))
	for _, op := range ops {
		p.Enqueue(op)
	}
	p.Enqueue(boundaryOp("end"))
	return p
}

// newFakeSimulator wires a Simulator onto a fakeTime and a capture buffer.
func newFakeSimulator(cfg *Config, programs []*Program) (*Simulator, *fakeTime, *bytes.Buffer) {
	var buf bytes.Buffer
	ft := &fakeTime{now: time.Unix(1000, 0)}
	s := NewSimulator(cfg, programs, &buf)
	s.Clock.now = ft.Now
	s.Engine.sleep = ft.Sleep
	return s, ft, &buf
}

// logMessages strips the timestamp prefix from every captured log line.
func logMessages(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		_, msg := splitLogLine(t, line)
		msgs = append(msgs, msg)
	}
	return msgs
}

// logTimestamps returns the elapsed-seconds prefix of every captured line.
func logTimestamps(t *testing.T, buf *bytes.Buffer) []float64 {
	t.Helper()
	var stamps []float64
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		ts, _ := splitLogLine(t, line)
		stamps = append(stamps, ts)
	}
	return stamps
}

func splitLogLine(t *testing.T, line string) (float64, string) {
	t.Helper()
	prefix, msg, found := strings.Cut(line, " - ")
	if !found {
		t.Fatalf("log line %q has no timestamp separator", line)
	}
	ts, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		t.Fatalf("log line %q has non-numeric timestamp: %v", line, err)
	}
	return ts, msg
}
