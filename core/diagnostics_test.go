// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"io"
	"testing"

	"github.com/devblok/koru/core"
	"github.com/devblok/koru/device"
	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestForwardMessages(t *testing.T) {
	c := qt.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	handler := core.ForwardMessages(logger, device.SeverityVerbose)
	handler(device.Message{
		Severity: device.SeverityError,
		Category: device.CategoryValidation,
		Layer:    "Validation",
		Code:     42,
		Text:     "vkCreateDevice: pCreateInfo->queueCreateInfoCount is 0",
	})
	handler(device.Message{
		Severity: device.SeverityWarning,
		Category: device.CategoryPerformance,
		Text:     "slow path",
	})
	handler(device.Message{
		Severity: device.SeverityVerbose,
		Text:     "loader message",
	})

	entries := hook.AllEntries()
	c.Assert(entries, qt.HasLen, 3)

	c.Assert(entries[0].Level, qt.Equals, logrus.ErrorLevel)
	c.Assert(entries[0].Message, qt.Equals, "vkCreateDevice: pCreateInfo->queueCreateInfoCount is 0")
	c.Assert(entries[0].Data["severity"], qt.Equals, "error")
	c.Assert(entries[0].Data["category"], qt.Equals, "validation")
	c.Assert(entries[0].Data["layer"], qt.Equals, "Validation")

	c.Assert(entries[1].Level, qt.Equals, logrus.WarnLevel)
	c.Assert(entries[1].Data["category"], qt.Equals, "performance")
	_, hasLayer := entries[1].Data["layer"]
	c.Assert(hasLayer, qt.IsFalse)

	c.Assert(entries[2].Level, qt.Equals, logrus.DebugLevel)
	c.Assert(entries[2].Message, qt.Equals, "loader message")
}

func TestForwardMessagesMinSeverity(t *testing.T) {
	c := qt.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	handler := core.ForwardMessages(logger, device.SeverityWarning)
	handler(device.Message{Severity: device.SeverityInfo, Text: "dropped"})
	handler(device.Message{Severity: device.SeverityWarning, Text: "kept"})

	c.Assert(hook.AllEntries(), qt.HasLen, 1)
	c.Assert(hook.LastEntry().Message, qt.Equals, "kept")
}

type panicHook struct{}

func (panicHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (panicHook) Fire(*logrus.Entry) error {
	panic("sink unavailable")
}

func TestForwardMessagesSwallowsFailures(t *testing.T) {
	c := qt.New(t)
	logger, _ := test.NewNullLogger()
	logger.AddHook(panicHook{})

	handler := core.ForwardMessages(logger, device.SeverityVerbose)

	var returned bool
	func() {
		defer func() {
			c.Check(recover(), qt.IsNil)
		}()
		handler(device.Message{Severity: device.SeverityError, Text: "boom"})
		returned = true
	}()
	c.Assert(returned, qt.IsTrue)
}

func TestAttachDiagnosticsFailure(t *testing.T) {
	c := qt.New(t)
	logger, _ := test.NewNullLogger()

	drv := &fakeDriver{
		layers:       []device.LayerProperties{validationLayer},
		messengerErr: errors.New("vk.CreateDebugReportCallback(): VK_ERROR_EXTENSION_NOT_PRESENT"),
	}
	inst, err := core.CreateInstance(drv, "template", nil, debugConfiguration(), device.MessengerInfo{}, logger)
	c.Assert(err, qt.IsNil)
	defer inst.Destroy()

	m, err := core.AttachDiagnostics(inst, device.MessengerInfo{})
	c.Assert(m, qt.IsNil)
	c.Assert(err, qt.ErrorIs, core.ErrDiagnosticsSetupFailed)
	c.Assert(err, qt.ErrorMatches, ".*VK_ERROR_EXTENSION_NOT_PRESENT")
}

func TestDefaultSeverityReachesDefaultLogger(t *testing.T) {
	c := qt.New(t)

	cfg := core.DefaultConfiguration()
	logger, err := core.NewLogger(cfg.Log)
	c.Assert(err, qt.IsNil)
	logger.Out = io.Discard
	hook := test.NewLocal(logger)

	minSeverity, err := core.ParseSeverity(cfg.Instance.MessageSeverity)
	c.Assert(err, qt.IsNil)

	handler := core.ForwardMessages(logger, minSeverity)
	handler(device.Message{Severity: minSeverity, Text: "least severe forwarded message"})
	c.Assert(hook.AllEntries(), qt.HasLen, 1)
	c.Assert(hook.LastEntry().Message, qt.Equals, "least severe forwarded message")
}
