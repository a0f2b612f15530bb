package scene

// Arena owns objects that left the scene but whose render resources have not been released yet.
// The renderer drains it once per frame after drawing and once more at teardown.
type Arena struct {
	objs []*Object
}

// Len returns the number of objects waiting for release.
func (a *Arena) Len() int { return len(a.objs) }

func (a *Arena) retire(o *Object) {
	o.Entity.Enabled = false
	a.objs = append(a.objs, o)
}

// Release hands every retired object to release (which may be nil) and empties the arena.
// It returns how many objects were released.
func (a *Arena) Release(release func(*Object)) int {
	n := len(a.objs)
	for i, o := range a.objs {
		if release != nil {
			release(o)
		}
		a.objs[i] = nil
	}
	a.objs = a.objs[:0]
	return n
}
