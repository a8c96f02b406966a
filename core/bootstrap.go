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

// Presenter is the windowing collaborator as seen by the bootstrap
type Presenter interface {
	// RequiredExtensions names the instance extensions the
	// window system needs for presentation
	RequiredExtensions() []string
}

// SurfaceCreator is implemented by presenters able to create a
// presentation surface for a native instance handle
type SurfaceCreator interface {
	CreateSurface(instance interface{}) (uintptr, error)
}

// State is the bootstrap progress
type State int

// Bootstrap states, in the order they are reached
const (
	Uninitialised State = iota
	InstanceCreated
	DiagnosticsAttached
	DiagnosticsSkipped
	SurfaceCreated
	DeviceSelected
	QueueFamilyResolved
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case InstanceCreated:
		return "instance created"
	case DiagnosticsAttached:
		return "diagnostics attached"
	case DiagnosticsSkipped:
		return "diagnostics skipped"
	case SurfaceCreated:
		return "surface created"
	case DeviceSelected:
		return "device selected"
	case QueueFamilyResolved:
		return "queue family resolved"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// NewBootstrap creates a not yet initialised bootstrap. presenter may be
// nil for headless use, in which case no surface is created.
func NewBootstrap(cfg Configuration, drv device.Driver, presenter Presenter, logger log.FieldLogger) *Bootstrap {
	return &Bootstrap{
		configuration: cfg,
		driver:        drv,
		presenter:     presenter,
		log:           logger,
		rules:         DefaultScoreRules,
		requirement:   device.GraphicsRequirement,
	}
}

// Bootstrap brings up instance, diagnostics, surface and logical device.
// It must be initialised with Initialise() and released with Destroy().
type Bootstrap struct {
	configuration Configuration
	driver        device.Driver
	presenter     Presenter
	log           log.FieldLogger

	rules       []ScoreRule
	requirement device.Requirement

	state    State
	failedAt State
	err      error

	instance  *Instance
	messenger *Messenger
	surface   *Surface
	selection Selection
	device    *LogicalDevice
}

// Initialise runs the bootstrap sequence once. Any failure leaves the
// bootstrap Failed; resources created so far are kept until Destroy.
func (b *Bootstrap) Initialise() error {
	if b.state != Uninitialised {
		return ErrAlreadyInitialised
	}
	if err := b.initialise(); err != nil {
		b.failedAt = b.state
		b.state = Failed
		b.err = err
		return err
	}
	b.state = Ready
	return nil
}

func (b *Bootstrap) initialise() error {
	cfg := b.configuration.Instance
	verbose := cfg.DebugMode

	minSeverity, err := ParseSeverity(cfg.MessageSeverity)
	if err != nil {
		return err
	}
	diag := device.MessengerInfo{
		MinSeverity: minSeverity,
		Handler:     ForwardMessages(b.log.WithField("source", "validation"), minSeverity),
	}

	var presentation []string
	if b.presenter != nil {
		presentation = b.presenter.RequiredExtensions()
	}

	inst, err := CreateInstance(b.driver, b.configuration.Window.Title, presentation, cfg, diag, b.log)
	if err != nil {
		return err
	}
	b.instance = inst
	b.state = InstanceCreated

	if inst.ValidationEnabled() {
		messenger, err := AttachDiagnostics(inst, diag)
		if err != nil {
			return err
		}
		b.messenger = messenger
		b.state = DiagnosticsAttached
	} else {
		b.state = DiagnosticsSkipped
	}

	if creator, ok := b.presenter.(SurfaceCreator); ok {
		surface, err := CreateSurface(inst, creator)
		if err != nil {
			return err
		}
		b.surface = surface
		b.state = SurfaceCreated
	}

	candidates, err := EnumerateDevices(inst)
	if err != nil {
		return err
	}

	selection, err := SelectDevice(candidates, b.rules, b.requirement, b.log, verbose)
	if err != nil {
		return err
	}
	b.selection = selection
	b.state = DeviceSelected

	// the selection already carries the family the scorer matched
	b.state = QueueFamilyResolved

	logical, err := CreateLogicalDevice(inst, selection)
	if err != nil {
		return err
	}
	b.device = logical

	b.log.WithFields(log.Fields{
		"device":      selection.Candidate.Properties.Name,
		"score":       selection.Score,
		"queueFamily": selection.QueueFamily,
		"validation":  inst.ValidationEnabled(),
	}).Info("Vulkan bootstrap ready")
	return nil
}

// State returns the current bootstrap state
func (b *Bootstrap) State() State {
	return b.state
}

// FailedAt returns the last state reached before the bootstrap failed.
// Only meaningful once State is Failed.
func (b *Bootstrap) FailedAt() State {
	return b.failedAt
}

// Err returns the failure reason once the bootstrap is Failed
func (b *Bootstrap) Err() error {
	return b.err
}

// Instance returns the created instance, nil before InstanceCreated
func (b *Bootstrap) Instance() *Instance {
	return b.instance
}

// Messenger returns the diagnostics messenger, nil when validation is off
func (b *Bootstrap) Messenger() *Messenger {
	return b.messenger
}

// Surface returns the presentation surface, nil when headless
func (b *Bootstrap) Surface() *Surface {
	return b.surface
}

// Selection returns the selected device and its queue family
func (b *Bootstrap) Selection() Selection {
	return b.selection
}

// Device returns the logical device, nil until Ready
func (b *Bootstrap) Device() *LogicalDevice {
	return b.device
}

// Destroy releases everything created, logical device and surface and
// messenger before the instance. Safe to call in any state.
func (b *Bootstrap) Destroy() {
	if b == nil {
		return
	}
	b.instance.Destroy()
	b.instance = nil
	b.messenger = nil
	b.surface = nil
	b.device = nil
}
