// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/devblok/koru/device"
	log "github.com/sirupsen/logrus"
)

// Messenger is a diagnostics callback registered on an Instance.
// It keeps a reference to its owner, which destroys it first on teardown.
type Messenger struct {
	owner  *Instance
	native device.Messenger
}

// Destroy unregisters the callback. Safe to call more than once.
func (m *Messenger) Destroy() {
	if m == nil || m.native == nil {
		return
	}
	m.native.Destroy()
	m.native = nil
	m.owner.release(m)
}

// ForwardMessages returns a handler passing each message, unmodified, to
// the logger. The handler never panics into the caller.
func ForwardMessages(logger log.FieldLogger, min device.Severity) device.MessageHandler {
	return func(msg device.Message) {
		defer func() {
			_ = recover()
		}()
		if msg.Severity < min {
			return
		}
		entry := logger.WithFields(log.Fields{
			"severity": msg.Severity.String(),
			"category": msg.Category.String(),
		})
		if msg.Layer != "" {
			entry = entry.WithField("layer", msg.Layer)
		}
		switch msg.Severity {
		case device.SeverityError:
			entry.Error(msg.Text)
		case device.SeverityWarning:
			entry.Warn(msg.Text)
		case device.SeverityInfo:
			entry.Info(msg.Text)
		default:
			entry.Debug(msg.Text)
		}
	}
}

// AttachDiagnostics registers a diagnostics callback on the instance.
// Only meaningful when the instance was created with validation enabled.
func AttachDiagnostics(inst *Instance, info device.MessengerInfo) (*Messenger, error) {
	native, err := inst.native.AttachMessenger(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiagnosticsSetupFailed, err)
	}

	m := &Messenger{
		owner:  inst,
		native: native,
	}
	inst.own(m)
	return m, nil
}
