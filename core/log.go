// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/devblok/koru/device"
	log "github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Output goes to stderr.
func NewLogger(cfg LogConfiguration) (*log.Logger, error) {
	logger := log.New()
	logger.Out = os.Stderr

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return logger, nil
}

// ParseSeverity converts a severity name into a device.Severity
func ParseSeverity(s string) (device.Severity, error) {
	switch strings.ToLower(s) {
	case "verbose", "debug":
		return device.SeverityVerbose, nil
	case "info":
		return device.SeverityInfo, nil
	case "warning", "warn":
		return device.SeverityWarning, nil
	case "error":
		return device.SeverityError, nil
	}
	return 0, fmt.Errorf("unknown message severity %q", s)
}
