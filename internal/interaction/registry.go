package interaction

// Registry maps scene objects to the Target that represents them.
// Spatial queries return objects; the registry turns them into targets
// without probing component types every tick.
type Registry struct {
	byUID map[uint64]Target
}

func NewRegistry() *Registry {
	return &Registry{byUID: make(map[uint64]Target)}
}

// Register binds uid to t, replacing any previous binding.
func (r *Registry) Register(uid uint64, t Target) {
	if t == nil {
		delete(r.byUID, uid)
		return
	}
	r.byUID[uid] = t
}

func (r *Registry) Unregister(uid uint64) {
	delete(r.byUID, uid)
}

func (r *Registry) Lookup(uid uint64) (Target, bool) {
	t, ok := r.byUID[uid]
	return t, ok
}

func (r *Registry) Len() int {
	return len(r.byUID)
}
