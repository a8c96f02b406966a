// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/devblok/koru/device"
)

// Surface is a presentation surface owned by an Instance
type Surface struct {
	owner  *Instance
	native device.Surface
}

// Destroy implements interface
func (s *Surface) Destroy() {
	if s == nil || s.native == nil {
		return
	}
	s.native.Destroy()
	s.native = nil
	s.owner.release(s)
}

// CreateSurface asks the windowing collaborator for a surface and hands
// its ownership to the instance
func CreateSurface(inst *Instance, creator SurfaceCreator) (*Surface, error) {
	raw, err := creator.CreateSurface(inst.native.Inner())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSurfaceCreationFailed, err)
	}
	native, err := inst.native.AdoptSurface(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSurfaceCreationFailed, err)
	}

	s := &Surface{
		owner:  inst,
		native: native,
	}
	inst.own(s)
	return s, nil
}
