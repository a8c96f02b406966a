// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"testing"

	"github.com/devblok/koru/device"
	vk "github.com/devblok/vulkan"
	qt "github.com/frankban/quicktest"
)

func TestDebugReportCallbackNeverAborts(t *testing.T) {
	c := qt.New(t)

	var received []device.Message
	info := debugReportInfo(device.MessengerInfo{
		MinSeverity: device.SeverityWarning,
		Handler: func(msg device.Message) {
			received = append(received, msg)
		},
	})
	c.Assert(info.SType, qt.Equals, vk.StructureTypeDebugReportCallbackCreateInfo)
	c.Assert(info.Flags, qt.Equals, reportFlags(device.SeverityWarning))

	ret := info.PfnCallback(vk.DebugReportFlags(vk.DebugReportErrorBit), vk.DebugReportObjectTypeInstance,
		0, 0, 7, "Validation", "vkCreateDevice: invalid queue count", nil)
	c.Assert(ret, qt.Equals, vk.Bool32(vk.False))
	c.Assert(received, qt.DeepEquals, []device.Message{{
		Severity: device.SeverityError,
		Category: device.CategoryValidation,
		Layer:    "Validation",
		Code:     7,
		Text:     "vkCreateDevice: invalid queue count",
	}})

	silent := debugReportInfo(device.MessengerInfo{})
	ret = silent.PfnCallback(vk.DebugReportFlags(vk.DebugReportWarningBit), vk.DebugReportObjectTypeUnknown,
		0, 0, 0, "", "no handler", nil)
	c.Assert(ret, qt.Equals, vk.Bool32(vk.False))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		flags    vk.DebugReportFlagBits
		severity device.Severity
		category device.Category
	}{{
		name:     "error",
		flags:    vk.DebugReportErrorBit,
		severity: device.SeverityError,
		category: device.CategoryValidation,
	}, {
		name:     "warning",
		flags:    vk.DebugReportWarningBit,
		severity: device.SeverityWarning,
		category: device.CategoryValidation,
	}, {
		name:     "performance",
		flags:    vk.DebugReportPerformanceWarningBit,
		severity: device.SeverityWarning,
		category: device.CategoryPerformance,
	}, {
		name:     "information",
		flags:    vk.DebugReportInformationBit,
		severity: device.SeverityInfo,
		category: device.CategoryGeneral,
	}, {
		name:     "debug",
		flags:    vk.DebugReportDebugBit,
		severity: device.SeverityVerbose,
		category: device.CategoryGeneral,
	}, {
		name:     "error wins",
		flags:    vk.DebugReportErrorBit | vk.DebugReportWarningBit,
		severity: device.SeverityError,
		category: device.CategoryValidation,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			severity, category := classify(vk.DebugReportFlags(tt.flags))
			c.Assert(severity, qt.Equals, tt.severity)
			c.Assert(category, qt.Equals, tt.category)
		})
	}
}

func TestReportFlags(t *testing.T) {
	c := qt.New(t)

	errorBit := vk.DebugReportFlags(vk.DebugReportErrorBit)
	warnings := vk.DebugReportFlags(vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit)
	info := vk.DebugReportFlags(vk.DebugReportInformationBit)
	debug := vk.DebugReportFlags(vk.DebugReportDebugBit)

	c.Assert(reportFlags(device.SeverityError), qt.Equals, errorBit)
	c.Assert(reportFlags(device.SeverityWarning), qt.Equals, errorBit|warnings)
	c.Assert(reportFlags(device.SeverityInfo), qt.Equals, errorBit|warnings|info)
	c.Assert(reportFlags(device.SeverityVerbose), qt.Equals, errorBit|warnings|info|debug)
}

func TestDeviceClass(t *testing.T) {
	c := qt.New(t)
	for deviceType, class := range map[vk.PhysicalDeviceType]device.Class{
		vk.PhysicalDeviceTypeDiscreteGpu:   device.ClassDiscreteGPU,
		vk.PhysicalDeviceTypeIntegratedGpu: device.ClassIntegratedGPU,
		vk.PhysicalDeviceTypeVirtualGpu:    device.ClassVirtualGPU,
		vk.PhysicalDeviceTypeCpu:           device.ClassCPU,
		vk.PhysicalDeviceTypeOther:         device.ClassOther,
	} {
		c.Assert(deviceClass(deviceType), qt.Equals, class)
	}
}

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)
	c.Assert(safeString("VK_KHR_surface"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeStrings([]string{"a", "b"}), qt.DeepEquals, []string{"a\x00", "b\x00"})
	c.Assert(safeStrings(nil), qt.HasLen, 0)
}
