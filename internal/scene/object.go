// Package scene implements the mutable shapes and textures of a renderer's
// scene: meshes and instances with lazily cached bounds, and multi-format
// textures that reduce to an average colour.
//
// Nothing in this package is safe for concurrent mutation. Callers edit a
// scene from one goroutine (or under their own lock) and only then hand it to
// readers.
package scene

import "sync/atomic"

var nextObjectID atomic.Uint64

// Object carries the identity and change tracking shared by every scene
// object. The dirty flag tells the owner that derived state is stale; the
// generation counter increases on every change so caches can compare the
// generation they were built from instead of sharing the flag.
type Object struct {
	id         uint64
	name       string
	dirty      bool
	generation uint64
}

// newObject returns an Object with a fresh ID. New objects start dirty.
func newObject() Object {
	return Object{id: nextObjectID.Add(1), dirty: true}
}

// ID returns the process-unique identifier assigned at construction.
func (o *Object) ID() uint64 {
	return o.id
}

// Name returns the debug name.
func (o *Object) Name() string {
	return o.name
}

// SetName sets the debug name.
func (o *Object) SetName(name string) {
	o.name = name
	o.markDirty()
}

// IsDirty reports whether derived state is stale.
func (o *Object) IsDirty() bool {
	return o.dirty
}

// SetDirty sets or clears the dirty flag. Setting it also advances the
// generation, so it invalidates any cache keyed on it.
func (o *Object) SetDirty(dirty bool) {
	if dirty {
		o.markDirty()
		return
	}
	o.dirty = false
}

// Generation returns the change counter.
func (o *Object) Generation() uint64 {
	return o.generation
}

func (o *Object) markDirty() {
	o.dirty = true
	o.generation++
}
