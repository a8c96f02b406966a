// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/koru/core"
	"github.com/devblok/koru/device"
	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	c := qt.New(t)

	logger, err := core.NewLogger(core.LogConfiguration{Level: "debug", Format: "json"})
	c.Assert(err, qt.IsNil)
	c.Assert(logger.GetLevel(), qt.Equals, logrus.DebugLevel)
	_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
	c.Assert(isJSON, qt.IsTrue)

	logger, err = core.NewLogger(core.LogConfiguration{Level: "warning"})
	c.Assert(err, qt.IsNil)
	_, isText := logger.Formatter.(*logrus.TextFormatter)
	c.Assert(isText, qt.IsTrue)

	_, err = core.NewLogger(core.LogConfiguration{Level: "noisy"})
	c.Assert(err, qt.ErrorMatches, `not a valid logrus Level: "noisy"`)

	_, err = core.NewLogger(core.LogConfiguration{Level: "info", Format: "xml"})
	c.Assert(err, qt.ErrorMatches, `unknown log format "xml"`)
}

func TestParseSeverity(t *testing.T) {
	c := qt.New(t)
	for name, severity := range map[string]device.Severity{
		"verbose": device.SeverityVerbose,
		"debug":   device.SeverityVerbose,
		"INFO":    device.SeverityInfo,
		"warn":    device.SeverityWarning,
		"warning": device.SeverityWarning,
		"error":   device.SeverityError,
	} {
		got, err := core.ParseSeverity(name)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, severity)
	}

	_, err := core.ParseSeverity("")
	c.Assert(err, qt.ErrorMatches, `unknown message severity ""`)
}

func TestTime(t *testing.T) {
	c := qt.New(t)

	tm := core.NewTime(core.TimeConfiguration{EventPollDelay: 5})
	defer tm.Stop()
	c.Assert(tm.EventPollDelay(), qt.Equals, 5)
	<-tm.EventTicker().C

	fallback := core.NewTime(core.TimeConfiguration{})
	defer fallback.Stop()
	c.Assert(fallback.EventPollDelay(), qt.Equals, 1)
}
