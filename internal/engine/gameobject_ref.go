package engine

// GameObjectRef is a serializable reference to a GameObject by UID.
// Components use it to point at other objects in the same scene, e.g. the
// detector's prompt label:
//
//	type InteractionDetector struct {
//	    engine.BaseComponent
//	    Prompt engine.GameObjectRef
//	}
//
//	func (d *InteractionDetector) Start() {
//	    if label := d.Prompt.Get(d.GetGameObject().Scene); label != nil {
//	        // bind to the label...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo builds a reference to g. A nil g yields an empty reference.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference. Returns nil if the reference is empty or the
// object is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something (UID != 0).
// It does not check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
