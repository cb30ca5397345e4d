// Configuration loading. Two on-disk formats produce the same Config record:
// the original tool's positional ".cnf" format and a YAML form. The format is
// chosen by file extension.

package sim

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// supportedVersion is the config-file Version/Phase this simulator accepts.
const supportedVersion = 3.0

// Config is the read-only simulator configuration record.
type Config struct {
	MetaDataFilePath string `yaml:"meta_data_file"`
	SchedulingCode   string `yaml:"scheduling_code"`
	// Quantum is parsed and carried but read by no implemented policy.
	// Reserved for a quantum-based policy; not a hidden requirement.
	Quantum int `yaml:"quantum_msec"`

	// Milliseconds per cycle for each simulated resource.
	ProcessorCycleTime int `yaml:"processor_cycle_msec"`
	MonitorDisplayTime int `yaml:"monitor_display_msec"`
	HardDriveCycleTime int `yaml:"hard_drive_cycle_msec"`
	PrinterCycleTime   int `yaml:"printer_cycle_msec"`
	KeyboardCycleTime  int `yaml:"keyboard_cycle_msec"`

	LogLocation LogLocation `yaml:"log"`
	LogFilePath string      `yaml:"log_file"`
}

// LoadConfig reads and validates a configuration file. Files ending in
// .yaml/.yml use the YAML format; anything else is parsed as the legacy
// positional .cnf format.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	var cfg *Config
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		cfg, err = parseYAMLConfig(data)
	default:
		cfg, err = parseCNFConfig(data)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants shared by both formats.
func (c *Config) Validate() error {
	if !IsValidSchedulingCode(c.SchedulingCode) {
		return fmt.Errorf("%w: unrecognized scheduling code %q", ErrConfig, c.SchedulingCode)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("%w: negative quantum %d", ErrConfig, c.Quantum)
	}
	cycleTimes := map[string]int{
		"processor":  c.ProcessorCycleTime,
		"monitor":    c.MonitorDisplayTime,
		"hard drive": c.HardDriveCycleTime,
		"printer":    c.PrinterCycleTime,
		"keyboard":   c.KeyboardCycleTime,
	}
	for name, ms := range cycleTimes {
		if ms < 0 {
			return fmt.Errorf("%w: negative %s cycle time %d", ErrConfig, name, ms)
		}
	}
	switch c.LogLocation {
	case LogToScreen:
	case LogToFile, LogToBoth:
		if c.LogFilePath == "" {
			return fmt.Errorf("%w: log file path required when logging to %s", ErrConfig, c.LogLocation)
		}
	default:
		return fmt.Errorf("%w: unrecognized log location %q", ErrConfig, c.LogLocation)
	}
	return nil
}

// CycleTime returns the configured milliseconds-per-cycle for an operation's
// (kind, resource) pair. Boundary markers and OS sentinels cost 0.
func (c *Config) CycleTime(kind OpKind, resource string) (int, error) {
	switch kind {
	case KindOS, KindBoundary:
		return 0, nil
	case KindProcessing:
		return c.ProcessorCycleTime, nil
	case KindInput, KindOutput:
		switch resource {
		case "hard drive":
			return c.HardDriveCycleTime, nil
		case "keyboard":
			return c.KeyboardCycleTime, nil
		case "monitor":
			return c.MonitorDisplayTime, nil
		case "printer":
			return c.PrinterCycleTime, nil
		default:
			return 0, fmt.Errorf("%w: unknown %s resource %q", ErrMetaData, kind, resource)
		}
	default:
		return 0, fmt.Errorf("%w: kind %s", ErrBadOperation, kind)
	}
}

// parseYAMLConfig decodes the YAML configuration form.
func parseYAMLConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return &cfg, nil
}

// parseCNFConfig decodes the legacy positional format:
//
//	Start Simulator Configuration File
//	Version/Phase: 3.0
//	File Path: Test_3e.mdf
//	CPU Scheduling Code: SRTF-N
//	Quantum Number (msec): 50
//	Processor cycle time (msec): 10
//	Monitor display time (msec): 20
//	Hard drive cycle time (msec): 15
//	Printer cycle time (msec): 25
//	Keyboard cycle time (msec): 50
//	Log: Log to Both
//	Log File Path: logfile_1.lgf
//	End Simulator Configuration File
//
// Fields are positional: only the value after the first ':' of each line is
// read, in the order above, as the original tool did.
func parseCNFConfig(data []byte) (*Config, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	if !scanner.Scan() || scanner.Text() != "Start Simulator Configuration File" {
		return nil, fmt.Errorf("%w: incorrect config file format", ErrConfig)
	}

	var values []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "End Simulator Configuration File" {
			return cnfFromValues(values)
		}
		_, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: malformed config line %q", ErrConfig, line)
		}
		values = append(values, strings.TrimSpace(value))
	}
	return nil, fmt.Errorf("%w: config file does not end with its end marker", ErrConfig)
}

// cnfFromValues assembles a Config from the positional .cnf values.
func cnfFromValues(values []string) (*Config, error) {
	// Version through Log are mandatory; the log file path line may be
	// omitted when logging to the screen only.
	if len(values) < 10 || len(values) > 11 {
		return nil, fmt.Errorf("%w: expected 10 or 11 config fields, got %d", ErrConfig, len(values))
	}

	version, err := strconv.ParseFloat(values[0], 64)
	if err != nil || version != supportedVersion {
		return nil, fmt.Errorf("%w: wrong simulator version %q", ErrConfig, values[0])
	}

	cfg := &Config{
		MetaDataFilePath: values[1],
		SchedulingCode:   values[2],
	}

	ints := []struct {
		dest *int
		name string
		raw  string
	}{
		{&cfg.Quantum, "quantum", values[3]},
		{&cfg.ProcessorCycleTime, "processor cycle time", values[4]},
		{&cfg.MonitorDisplayTime, "monitor display time", values[5]},
		{&cfg.HardDriveCycleTime, "hard drive cycle time", values[6]},
		{&cfg.PrinterCycleTime, "printer cycle time", values[7]},
		{&cfg.KeyboardCycleTime, "keyboard cycle time", values[8]},
	}
	for _, f := range ints {
		n, err := strconv.Atoi(f.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not an integer", ErrConfig, f.name, f.raw)
		}
		*f.dest = n
	}

	switch values[9] {
	case "Log to Both":
		cfg.LogLocation = LogToBoth
	case "Log to File":
		cfg.LogLocation = LogToFile
	default:
		cfg.LogLocation = LogToScreen
	}
	if len(values) == 11 {
		cfg.LogFilePath = values[10]
	}
	return cfg, nil
}
