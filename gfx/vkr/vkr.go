// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkr implements the device driver on top of the Vulkan API.
package vkr

import (
	"errors"
	"unsafe"

	"github.com/devblok/koru/device"
	vk "github.com/devblok/vulkan"
)

// DebugReportExtension is the instance extension carrying validation messages
const DebugReportExtension = "VK_EXT_debug_report"

// New loads the Vulkan entry points and returns a ready driver.
// procAddr is the vkGetInstanceProcAddr exported by the windowing
// library, when nil the system loader is used.
func New(procAddr unsafe.Pointer) (*Driver, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}

	return &Driver{}, nil
}

// Driver is the Vulkan device.Driver
type Driver struct{}

// Layers implements interface
func (d *Driver) Layers() ([]device.LayerProperties, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	layers := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, layers)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}

	result := make([]device.LayerProperties, 0, count)
	for _, layer := range layers[:count] {
		layer.Deref()
		result = append(result, device.LayerProperties{
			Name:                  vk.ToString(layer.LayerName[:]),
			Description:           vk.ToString(layer.Description[:]),
			SpecVersion:           layer.SpecVersion,
			ImplementationVersion: layer.ImplementationVersion,
		})
	}
	return result, nil
}

// Extensions implements interface
func (d *Driver) Extensions() ([]device.ExtensionProperties, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	extensions := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, extensions)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}

	result := make([]device.ExtensionProperties, 0, count)
	for _, ext := range extensions[:count] {
		ext.Deref()
		result = append(result, device.ExtensionProperties{
			Name:        vk.ToString(ext.ExtensionName[:]),
			SpecVersion: ext.SpecVersion,
		})
	}
	return result, nil
}

// DiagnosticsExtension implements interface
func (d *Driver) DiagnosticsExtension() string {
	return DebugReportExtension
}

// CreateInstance implements interface
func (d *Driver) CreateInstance(info device.InstanceInfo) (device.Instance, error) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         info.APIVersion,
		ApplicationVersion: info.ApplicationVersion,
		EngineVersion:      info.EngineVersion,
		PApplicationName:   safeString(info.ApplicationName),
		PEngineName:        safeString(info.EngineName),
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}

	if info.Messenger != nil {
		dci := debugReportInfo(*info.Messenger)
		chained, _ := dci.PassRef()
		instanceInfo.PNext = unsafe.Pointer(chained)
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.New("vk.InitInstance(): " + err.Error())
	}

	return &Instance{
		instance: instance,
	}, nil
}
