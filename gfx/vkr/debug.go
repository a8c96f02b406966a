// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"unsafe"

	"github.com/devblok/koru/device"
	vk "github.com/devblok/vulkan"
)

// Messenger is a registered debug report callback
type Messenger struct {
	instance vk.Instance
	callback vk.DebugReportCallback
}

// Destroy implements interface
func (m *Messenger) Destroy() {
	if m.instance == nil {
		return
	}
	vk.DestroyDebugReportCallback(m.instance, m.callback, nil)
	m.instance = nil
}

func debugReportInfo(info device.MessengerInfo) vk.DebugReportCallbackCreateInfo {
	handler := info.Handler
	return vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: reportFlags(info.MinSeverity),
		PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
			object uint, location uint, messageCode int32, pLayerPrefix string,
			pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
			if handler != nil {
				severity, category := classify(flags)
				handler(device.Message{
					Severity: severity,
					Category: category,
					Layer:    pLayerPrefix,
					Code:     messageCode,
					Text:     pMessage,
				})
			}
			// never abort the call that triggered the report
			return vk.False
		},
	}
}

func reportFlags(min device.Severity) vk.DebugReportFlags {
	flags := vk.DebugReportFlags(vk.DebugReportErrorBit)
	if min <= device.SeverityWarning {
		flags |= vk.DebugReportFlags(vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit)
	}
	if min <= device.SeverityInfo {
		flags |= vk.DebugReportFlags(vk.DebugReportInformationBit)
	}
	if min <= device.SeverityVerbose {
		flags |= vk.DebugReportFlags(vk.DebugReportDebugBit)
	}
	return flags
}

func classify(flags vk.DebugReportFlags) (device.Severity, device.Category) {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return device.SeverityError, device.CategoryValidation
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		return device.SeverityWarning, device.CategoryPerformance
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		return device.SeverityWarning, device.CategoryValidation
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return device.SeverityInfo, device.CategoryGeneral
	default:
		return device.SeverityVerbose, device.CategoryGeneral
	}
}
