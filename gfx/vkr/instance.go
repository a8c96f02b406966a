// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"
	"fmt"

	"github.com/devblok/koru/device"
	vk "github.com/devblok/vulkan"
)

// Instance describes a Vulkan API Instance
type Instance struct {
	instance vk.Instance
}

// PhysicalDevices implements interface
func (v *Instance) PhysicalDevices() ([]device.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, availableDevices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}

	devices := make([]device.PhysicalDevice, 0, deviceCount)
	for _, pd := range availableDevices[:deviceCount] {
		devices = append(devices, PhysicalDevice{handle: pd})
	}
	return devices, nil
}

// AttachMessenger implements interface
func (v *Instance) AttachMessenger(info device.MessengerInfo) (device.Messenger, error) {
	dci := debugReportInfo(info)

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(v.instance, &dci, nil, &callback)); err != nil {
		return nil, errors.New("vk.CreateDebugReportCallback(): " + err.Error())
	}

	return &Messenger{
		instance: v.instance,
		callback: callback,
	}, nil
}

// AdoptSurface implements interface
func (v *Instance) AdoptSurface(raw uintptr) (device.Surface, error) {
	if raw == 0 {
		return nil, errors.New("vk.SurfaceFromPointer(): null surface")
	}
	return &Surface{
		instance: v.instance,
		surface:  vk.SurfaceFromPointer(raw),
	}, nil
}

// CreateDevice implements interface
func (v *Instance) CreateDevice(pd device.PhysicalDevice, queueFamily uint32) (device.LogicalDevice, error) {
	physical, ok := pd.(PhysicalDevice)
	if !ok {
		return nil, fmt.Errorf("vk.CreateDevice(): foreign physical device %T", pd)
	}

	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: queueFamily,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	dci := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queueInfos)),
		PQueueCreateInfos:    queueInfos,
	}

	var vkDevice vk.Device
	if err := vk.Error(vk.CreateDevice(physical.handle, &dci, nil, &vkDevice)); err != nil {
		return nil, errors.New("vk.CreateDevice(): " + err.Error())
	}

	var queue vk.Queue
	vk.GetDeviceQueue(vkDevice, queueFamily, 0, &queue)

	return &LogicalDevice{
		device:      vkDevice,
		queue:       queue,
		queueFamily: queueFamily,
	}, nil
}

// Inner returns internal vk.Instance
func (v *Instance) Inner() interface{} {
	return v.instance
}

// Destroy implements interface
func (v *Instance) Destroy() {
	if v == nil || v.instance == nil {
		return
	}
	vk.DestroyInstance(v.instance, nil)
	v.instance = nil
}

// PhysicalDevice wraps a vk.PhysicalDevice handle
type PhysicalDevice struct {
	handle vk.PhysicalDevice
}

// Properties implements interface
func (p PhysicalDevice) Properties() device.Properties {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(p.handle, &properties)
	properties.Deref()

	return device.Properties{
		ID:            int(properties.DeviceID),
		VendorID:      int(properties.VendorID),
		DriverVersion: int(properties.DriverVersion),
		APIVersion:    int(properties.ApiVersion),
		Name:          vk.ToString(properties.DeviceName[:]),
		Class:         deviceClass(properties.DeviceType),
	}
}

// Features implements interface
func (p PhysicalDevice) Features() device.Features {
	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(p.handle, &features)
	features.Deref()

	return device.Features{
		TessellationShader: features.TessellationShader.B(),
		GeometryShader:     features.GeometryShader.B(),
		SamplerAnisotropy:  features.SamplerAnisotropy.B(),
	}
}

// QueueFamilies implements interface
func (p PhysicalDevice) QueueFamilies() []device.QueueFamily {
	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(p.handle, &queueFamilyCount, nil)
	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(p.handle, &queueFamilyCount, queueFamilies)

	families := make([]device.QueueFamily, 0, queueFamilyCount)
	for _, family := range queueFamilies[:queueFamilyCount] {
		family.Deref()
		families = append(families, device.QueueFamily{
			Flags: device.QueueFlags(family.QueueFlags),
			Count: family.QueueCount,
		})
	}
	return families
}

func deviceClass(t vk.PhysicalDeviceType) device.Class {
	switch t {
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return device.ClassDiscreteGPU
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return device.ClassIntegratedGPU
	case vk.PhysicalDeviceTypeVirtualGpu:
		return device.ClassVirtualGPU
	case vk.PhysicalDeviceTypeCpu:
		return device.ClassCPU
	default:
		return device.ClassOther
	}
}

// Surface is a window surface owned by an Instance
type Surface struct {
	instance vk.Instance
	surface  vk.Surface
}

// Destroy implements interface
func (s *Surface) Destroy() {
	if s.surface == vk.NullSurface {
		return
	}
	vk.DestroySurface(s.instance, s.surface, nil)
	s.surface = vk.NullSurface
}

// LogicalDevice is a created vk.Device with its single queue
type LogicalDevice struct {
	device      vk.Device
	queue       vk.Queue
	queueFamily uint32
}

// QueueFamily implements interface
func (d *LogicalDevice) QueueFamily() uint32 {
	return d.queueFamily
}

// Queue returns the device queue
func (d *LogicalDevice) Queue() vk.Queue {
	return d.queue
}

// Destroy implements interface
func (d *LogicalDevice) Destroy() {
	if d.device == nil {
		return
	}
	vk.DestroyDevice(d.device, nil)
	d.device = nil
}
