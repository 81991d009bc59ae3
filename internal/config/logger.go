package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger honoring log_level and log_format. prefix
// labels every line (e.g. "http").
func (c Config) NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	formatter := log.TextFormatter
	switch c.LogFormat {
	case FormatJSON:
		formatter = log.JSONFormatter
	case FormatLogfmt:
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       formatter,
	}), nil
}
