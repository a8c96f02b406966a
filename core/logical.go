// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/devblok/koru/device"
)

// LogicalDevice is a logical device owned by an Instance
type LogicalDevice struct {
	owner  *Instance
	native device.LogicalDevice
}

// QueueFamily returns the family the device queue was taken from
func (d *LogicalDevice) QueueFamily() uint32 {
	return d.native.QueueFamily()
}

// Native returns the driver device
func (d *LogicalDevice) Native() device.LogicalDevice {
	return d.native
}

// Destroy implements interface
func (d *LogicalDevice) Destroy() {
	if d == nil || d.native == nil {
		return
	}
	d.native.Destroy()
	d.native = nil
	d.owner.release(d)
}

// CreateLogicalDevice creates the logical device for a selection
func CreateLogicalDevice(inst *Instance, sel Selection) (*LogicalDevice, error) {
	native, err := inst.native.CreateDevice(sel.Candidate.Device, sel.QueueFamily)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDeviceCreationFailed, err)
	}

	d := &LogicalDevice{
		owner:  inst,
		native: native,
	}
	inst.own(d)
	return d, nil
}
