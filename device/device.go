// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device describes rendering devices independently of the
// underlying graphics API, and the seam through which that API is driven.
package device

// Class is the kind of hardware behind a physical device.
type Class int

// Device classes as reported by the graphics API
const (
	ClassOther Class = iota
	ClassIntegratedGPU
	ClassDiscreteGPU
	ClassVirtualGPU
	ClassCPU
)

func (c Class) String() string {
	switch c {
	case ClassIntegratedGPU:
		return "integrated"
	case ClassDiscreteGPU:
		return "discrete"
	case ClassVirtualGPU:
		return "virtual"
	case ClassCPU:
		return "cpu"
	default:
		return "other"
	}
}

// MarshalText implements encoding.TextMarshaler
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Properties describes general physical properties of a rendering device
type Properties struct {
	ID            int    `json:"id" yaml:"id"`
	VendorID      int    `json:"vendorId" yaml:"vendor_id"`
	DriverVersion int    `json:"driverVersion" yaml:"driver_version"`
	APIVersion    int    `json:"apiVersion" yaml:"api_version"`
	Name          string `json:"name" yaml:"name"`
	Class         Class  `json:"class" yaml:"class"`
}

// Features lists the optional device features the bootstrap cares about
type Features struct {
	TessellationShader bool `json:"tessellationShader" yaml:"tessellation_shader"`
	GeometryShader     bool `json:"geometryShader" yaml:"geometry_shader"`
	SamplerAnisotropy  bool `json:"samplerAnisotropy" yaml:"sampler_anisotropy"`
}

// LayerProperties describes an instance layer
type LayerProperties struct {
	Name                  string `json:"name" yaml:"name"`
	Description           string `json:"description" yaml:"description"`
	SpecVersion           uint32 `json:"specVersion" yaml:"spec_version"`
	ImplementationVersion uint32 `json:"implementationVersion" yaml:"implementation_version"`
}

// ExtensionProperties describes an instance extension
type ExtensionProperties struct {
	Name        string `json:"name" yaml:"name"`
	SpecVersion uint32 `json:"specVersion" yaml:"spec_version"`
}

// Candidate is a read-only snapshot of a physical device,
// taken once at enumeration time.
type Candidate struct {
	Index         int           `json:"index" yaml:"index"`
	Properties    Properties    `json:"properties" yaml:"properties"`
	Features      Features      `json:"features" yaml:"features"`
	QueueFamilies []QueueFamily `json:"queueFamilies" yaml:"queue_families"`

	Device PhysicalDevice `json:"-" yaml:"-"`
}

// Snapshot queries everything scoring needs from a physical device.
func Snapshot(index int, pd PhysicalDevice) Candidate {
	return Candidate{
		Index:         index,
		Properties:    pd.Properties(),
		Features:      pd.Features(),
		QueueFamilies: pd.QueueFamilies(),
		Device:        pd,
	}
}
