package scene

import (
	"fmt"

	"github.com/Faultbox/scenecore/pkg/math"
)

// Instance reuses the geometry of another shape under its own transform,
// material and shadow flag. The base shape is borrowed: it is owned by the
// scene and must outlive every instance that points at it. Many instances may
// share one base, so an instance never caches bounds of its own; it always
// asks the base, which keeps it correct when the base geometry changes.
type Instance struct {
	shapeBase
	base Shape
}

// NewInstance creates an instance of base.
func NewInstance(base Shape) (*Instance, error) {
	inst := &Instance{shapeBase: newShapeBase()}
	if err := inst.SetBaseShape(base); err != nil {
		return nil, err
	}
	return inst, nil
}

// SetBaseShape replaces the referenced shape. Instances of instances are
// allowed as long as the chain does not lead back to this instance.
func (in *Instance) SetBaseShape(base Shape) error {
	if isNilShape(base) {
		return ErrMissingBaseShape
	}
	for s := base; s != nil; {
		if s == Shape(in) {
			return fmt.Errorf("%w: shape %d", ErrInstanceCycle, in.ID())
		}
		next, ok := s.(*Instance)
		if !ok {
			break
		}
		s = next.base
	}
	in.base = base
	in.markDirty()
	return nil
}

// BaseShape returns the referenced shape.
func (in *Instance) BaseShape() Shape {
	return in.base
}

// LocalAABB returns the base shape's local box. An instance that was never
// given a base returns the empty box.
func (in *Instance) LocalAABB() math.AABB {
	if in.base == nil {
		return math.EmptyAABB()
	}
	return in.base.LocalAABB()
}

// WorldAABB maps the base's local box through this instance's transform.
func (in *Instance) WorldAABB() math.AABB {
	return worldAABB(in)
}

func isNilShape(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Mesh:
		return v == nil
	case *Instance:
		return v == nil
	}
	return false
}
