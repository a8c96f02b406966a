// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/devblok/koru/device"
)

// fakeDriver is an in-memory device.Driver recording every call that
// creates or destroys something.
type fakeDriver struct {
	layers     []device.LayerProperties
	extensions []device.ExtensionProperties
	devices    []*fakePhysicalDevice

	layersErr    error
	instanceErr  error
	messengerErr error
	surfaceErr   error
	deviceErr    error
	enumerateErr error

	created *device.InstanceInfo
	events  []string
}

func (d *fakeDriver) Layers() ([]device.LayerProperties, error) {
	return d.layers, d.layersErr
}

func (d *fakeDriver) Extensions() ([]device.ExtensionProperties, error) {
	return d.extensions, nil
}

func (d *fakeDriver) DiagnosticsExtension() string {
	return "VK_EXT_debug_report"
}

func (d *fakeDriver) CreateInstance(info device.InstanceInfo) (device.Instance, error) {
	if d.instanceErr != nil {
		return nil, d.instanceErr
	}
	d.created = &info
	d.events = append(d.events, "create instance")
	return &fakeInstance{driver: d}, nil
}

type fakeInstance struct {
	driver *fakeDriver
}

func (i *fakeInstance) PhysicalDevices() ([]device.PhysicalDevice, error) {
	if i.driver.enumerateErr != nil {
		return nil, i.driver.enumerateErr
	}
	devices := make([]device.PhysicalDevice, 0, len(i.driver.devices))
	for _, pd := range i.driver.devices {
		devices = append(devices, pd)
	}
	return devices, nil
}

func (i *fakeInstance) AttachMessenger(info device.MessengerInfo) (device.Messenger, error) {
	if i.driver.messengerErr != nil {
		return nil, i.driver.messengerErr
	}
	i.driver.events = append(i.driver.events, "create messenger")
	return &fakeObject{name: "messenger", driver: i.driver}, nil
}

func (i *fakeInstance) AdoptSurface(raw uintptr) (device.Surface, error) {
	if raw == 0 {
		return nil, errors.New("null surface")
	}
	i.driver.events = append(i.driver.events, "create surface")
	return &fakeObject{name: "surface", driver: i.driver}, nil
}

func (i *fakeInstance) CreateDevice(pd device.PhysicalDevice, queueFamily uint32) (device.LogicalDevice, error) {
	if i.driver.deviceErr != nil {
		return nil, i.driver.deviceErr
	}
	name := pd.Properties().Name
	i.driver.events = append(i.driver.events, fmt.Sprintf("create device %s queue %d", name, queueFamily))
	return &fakeObject{name: "device", driver: i.driver, queueFamily: queueFamily}, nil
}

func (i *fakeInstance) Inner() interface{} {
	return "instance-handle"
}

func (i *fakeInstance) Destroy() {
	i.driver.events = append(i.driver.events, "destroy instance")
}

type fakeObject struct {
	name        string
	driver      *fakeDriver
	queueFamily uint32
}

func (o *fakeObject) QueueFamily() uint32 {
	return o.queueFamily
}

func (o *fakeObject) Destroy() {
	o.driver.events = append(o.driver.events, "destroy "+o.name)
}

type fakePhysicalDevice struct {
	properties    device.Properties
	features      device.Features
	queueFamilies []device.QueueFamily
}

func (p *fakePhysicalDevice) Properties() device.Properties {
	return p.properties
}

func (p *fakePhysicalDevice) Features() device.Features {
	return p.features
}

func (p *fakePhysicalDevice) QueueFamilies() []device.QueueFamily {
	return p.queueFamilies
}

func gpu(name string, class device.Class, tessellation bool, flags ...device.QueueFlags) *fakePhysicalDevice {
	pd := &fakePhysicalDevice{
		properties: device.Properties{Name: name, Class: class},
		features:   device.Features{TessellationShader: tessellation},
	}
	for _, f := range flags {
		pd.queueFamilies = append(pd.queueFamilies, device.QueueFamily{Flags: f, Count: 1})
	}
	return pd
}

func candidate(index int, pd *fakePhysicalDevice) device.Candidate {
	return device.Snapshot(index, pd)
}

type fakePresenter struct {
	extensions []string
}

func (p fakePresenter) RequiredExtensions() []string {
	return p.extensions
}

type fakeWindow struct {
	fakePresenter
	surface uintptr
	err     error
	handle  interface{}
}

func (w *fakeWindow) CreateSurface(instance interface{}) (uintptr, error) {
	w.handle = instance
	return w.surface, w.err
}

var validationLayer = device.LayerProperties{Name: "VK_LAYER_KHRONOS_validation"}
