package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/schedsim/schedsim/sim"
)

func TestLogDestinations(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.lgf")

	cases := []struct {
		location  sim.LogLocation
		wantDests int
		wantFile  bool
	}{
		{sim.LogToScreen, 1, false},
		{sim.LogToFile, 1, true},
		{sim.LogToBoth, 2, true},
	}
	for _, tc := range cases {
		cfg := &sim.Config{LogLocation: tc.location, LogFilePath: logPath}
		dests, cleanup, err := logDestinations(cfg)
		require.NoError(t, err, "location %s", tc.location)
		assert.Len(t, dests, tc.wantDests, "location %s", tc.location)
		cleanup()

		_, statErr := os.Stat(logPath)
		if tc.wantFile {
			assert.NoError(t, statErr, "location %s should create the log file", tc.location)
			os.Remove(logPath)
		} else {
			assert.True(t, os.IsNotExist(statErr), "location %s should not create a file", tc.location)
		}
	}
}

func TestLogDestinations_UnwritablePath(t *testing.T) {
	cfg := &sim.Config{
		LogLocation: sim.LogToFile,
		LogFilePath: filepath.Join(t.TempDir(), "missing", "run.lgf"),
	}
	_, _, err := logDestinations(cfg)
	assert.Error(t, err)
}
