package engine

import (
	"fmt"
	"sort"
	"strings"
)

// LayerMask is a bitset of collision/query layers.
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerInteractable
	LayerPlayer
	LayerUI
)

// AllLayers matches every layer.
const AllLayers = ^LayerMask(0)

var layerByName = map[string]LayerMask{
	"default":      LayerDefault,
	"interactable": LayerInteractable,
	"player":       LayerPlayer,
	"ui":           LayerUI,
}

// Has reports whether any bit of l is set in m.
func (m LayerMask) Has(l LayerMask) bool {
	return m&l != 0
}

func (m LayerMask) String() string {
	if m == 0 {
		return "none"
	}
	if m == AllLayers {
		return "all"
	}
	var names []string
	for name, l := range layerByName {
		if m.Has(l) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// LayerByName looks up a named layer (case-insensitive).
func LayerByName(name string) (LayerMask, bool) {
	l, ok := layerByName[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// MaskFromNames combines named layers into one mask.
// "all" selects every layer.
func MaskFromNames(names []string) (LayerMask, error) {
	var mask LayerMask
	for _, name := range names {
		if strings.EqualFold(name, "all") {
			return AllLayers, nil
		}
		l, ok := LayerByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown layer %q", name)
		}
		mask |= l
	}
	return mask, nil
}
