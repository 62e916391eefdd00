package logger

import (
	"fmt"
	"io"

	"github.com/josephlewis42/sgrep/core/match"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by ParseLevel.
var Levels = []string{"debug", "info", "warn", "error"}

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// ParseLevel converts a level name to a zap level, empty means DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		name = DefaultLevel
	}

	for _, known := range Levels {
		if known != name {
			continue
		}

		var level zapcore.Level
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return level, err
		}
		return level, nil
	}

	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
}

// New creates a human readable logger writing to w. Timestamps are left out
// so the output stays stable between runs.
func New(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// Options describes the search options as a structured field.
func Options(opts match.Options) zap.Field {
	return zap.Object("options", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddBool("ignore_case", opts.IgnoreCase)
		enc.AddBool("invert_match", opts.InvertMatch)
		enc.AddBool("word_regexp", opts.WordRegexp)
		enc.AddBool("only_matching", opts.OnlyMatching)
		if opts.Limit.Enabled {
			enc.AddInt("max_count", opts.Limit.Max)
		}
		enc.AddBool("skip_blank_lines", opts.SkipBlank)
		enc.AddString("engine", string(opts.Engine))
		return nil
	}))
}

// Stats describes the result of a search as a structured field.
func Stats(stats match.Stats) zap.Field {
	return zap.Object("stats", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddInt("sources", stats.Sources)
		enc.AddInt("lines_read", stats.LinesRead)
		enc.AddInt("lines_selected", stats.LinesSelected)
		enc.AddInt("lines_written", stats.LinesWritten)
		enc.AddBool("truncated", stats.Truncated)
		return nil
	}))
}
