package advlog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"advlog/format"
	"advlog/sink"
)

// sessionFile mirrors SessionOptions for TOML configuration files.
type sessionFile struct {
	OutputDir     string `toml:"output_dir"`
	SessionName   string `toml:"session_name"`
	LogFile       string `toml:"log_file"`
	FileMode      string `toml:"file_mode"`
	Level         string `toml:"level"`
	Style         string `toml:"style"`
	ShowLocation  bool   `toml:"show_location"`
	UseColor      bool   `toml:"use_color"`
	SharedConsole bool   `toml:"shared_console"`
	RetentionDays int    `toml:"retention_days"`
}

// LoadSessionOptions reads SessionOptions from a TOML file and validates the
// level, style, and file mode values so a bad config fails before any sink
// is opened.
func LoadSessionOptions(path string) (SessionOptions, error) {
	var opts SessionOptions

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}
	var file sessionFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return opts, fmt.Errorf("%w: parse config %s: %v", ErrConfiguration, path, err)
	}

	if _, err := format.ParseLevelStrict(file.Level); err != nil {
		return opts, err
	}
	switch sink.FileMode(file.FileMode) {
	case "", sink.ModeWrite, sink.ModeAppend:
	default:
		return opts, fmt.Errorf("%w: unknown file mode %q", ErrConfiguration, file.FileMode)
	}

	opts = SessionOptions{
		OutputDir:     file.OutputDir,
		SessionName:   file.SessionName,
		LogFile:       file.LogFile,
		FileMode:      sink.FileMode(file.FileMode),
		Level:         file.Level,
		Style:         file.Style,
		ShowLocation:  file.ShowLocation,
		UseColor:      file.UseColor,
		SharedConsole: file.SharedConsole,
		RetentionDays: file.RetentionDays,
	}
	return opts, nil
}
