// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import "strings"

// QueueFlags is the capability flag set of a queue family
type QueueFlags uint32

// Queue capability bits, same values as the Vulkan queue flag bits
const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

func (f QueueFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f&QueueGraphics != 0 {
		names = append(names, "graphics")
	}
	if f&QueueCompute != 0 {
		names = append(names, "compute")
	}
	if f&QueueTransfer != 0 {
		names = append(names, "transfer")
	}
	if f&QueueSparseBinding != 0 {
		names = append(names, "sparse")
	}
	return strings.Join(names, "|")
}

// MarshalText implements encoding.TextMarshaler
func (f QueueFlags) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// QueueFamily is a group of queues sharing the same capabilities
type QueueFamily struct {
	Flags QueueFlags `json:"flags" yaml:"flags"`
	Count uint32     `json:"count" yaml:"count"`
}

// Requirement is a predicate over a queue family's flag set.
type Requirement struct {
	Name  string
	Flags QueueFlags
}

// GraphicsRequirement is satisfied by families that accept graphics work.
var GraphicsRequirement = Requirement{
	Name:  "graphics",
	Flags: QueueGraphics,
}

// SatisfiedBy reports whether every required bit is present in flags.
func (r Requirement) SatisfiedBy(flags QueueFlags) bool {
	return flags&r.Flags == r.Flags
}

// FindQueueFamily returns the index of the first queue family of the
// candidate that satisfies the requirement.
func FindQueueFamily(c Candidate, r Requirement) (uint32, bool) {
	for i, family := range c.QueueFamilies {
		if r.SatisfiedBy(family.Flags) {
			return uint32(i), true
		}
	}
	return 0, false
}
