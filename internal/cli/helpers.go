package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/loom/internal/logging"
	"github.com/aretw0/loom/pkg/blueprint"
	"github.com/aretw0/loom/pkg/machine"
)

// LoadMachine parses a machine file in the textual format.
func LoadMachine(path string) (*machine.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open machine: %w", err)
	}
	defer f.Close()

	m, err := machine.ReadMachine(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}

// LoadBlueprint parses and compiles a YAML blueprint file.
func LoadBlueprint(path string) (*machine.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open blueprint: %w", err)
	}
	bp, err := blueprint.Parse(data)
	if err != nil {
		return nil, err
	}
	return bp.Compile()
}

// BuildLogger resolves the --log-level / --log-file flags into a
// logger. The returned closer is non-nil when a log file was opened.
func BuildLogger(level, logFile string) (*slog.Logger, func() error, error) {
	slogLevel, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if logFile == "" {
		return logging.New(slogLevel), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewWithFile(slogLevel, f), f.Close, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
