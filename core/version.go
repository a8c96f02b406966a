// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// EngineName is reported to the driver in the application info
const EngineName = "Koru3D"

// APIVersion10 is the Vulkan 1.0 version number
var APIVersion10 = MakeVersion(1, 0, 0)

// MakeVersion packs a version number the way Vulkan does
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// ParseAPIVersion packs a version string such as "1.1" or "1.2.131".
// An empty string means Vulkan 1.0.
func ParseAPIVersion(raw string) (uint32, error) {
	if raw == "" {
		return APIVersion10, nil
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return 0, fmt.Errorf("parse api version %q: %w", raw, err)
	}
	if v.Major() > 0x3ff || v.Minor() > 0x3ff || v.Patch() > 0xfff {
		return 0, fmt.Errorf("api version %q out of range", raw)
	}
	return MakeVersion(uint32(v.Major()), uint32(v.Minor()), uint32(v.Patch())), nil
}

// FormatVersion unpacks a Vulkan version number into dotted form
func FormatVersion(v uint32) string {
	return semver.New(uint64(v>>22), uint64(v>>12&0x3ff), uint64(v&0xfff), "", "").String()
}
