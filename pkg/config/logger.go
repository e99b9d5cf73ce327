package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger from the Log section. Unknown levels fall back
// to info and unknown formats to text.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	switch c.Log.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          c.Server.Name,
	})
}
