package interaction

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestSelectNearestPicksClosest(t *testing.T) {
	near := newTarget("near", 1.0)
	far := newTarget("far", 2.0)

	got := SelectNearest(rl.Vector3{}, 2.5, []Target{far, near})

	assert.Same(t, near, got)
}

func TestSelectNearestSkipsIneligible(t *testing.T) {
	near := newTarget("near", 1.0)
	near.eligible = false
	far := newTarget("far", 2.0)

	assert.Same(t, far, SelectNearest(rl.Vector3{}, 2.5, []Target{near, far}))
}

func TestSelectNearestOutOfRange(t *testing.T) {
	a := newTarget("a", 3.0)
	b := newTarget("b", -4.0)

	assert.Nil(t, SelectNearest(rl.Vector3{}, 2.5, []Target{a, b}))
}

func TestSelectNearestRadiusBoundaryInclusive(t *testing.T) {
	edge := newTarget("edge", 2.5)

	assert.Same(t, edge, SelectNearest(rl.Vector3{}, 2.5, []Target{edge}))
}

func TestSelectNearestEmptyAndNil(t *testing.T) {
	assert.Nil(t, SelectNearest(rl.Vector3{}, 2.5, nil))
	assert.Nil(t, SelectNearest(rl.Vector3{}, 2.5, []Target{nil}))
	assert.Nil(t, SelectNearest(rl.Vector3{}, -1, []Target{newTarget("a", 0)}))
}

func TestSelectNearestTieBreakFirstWins(t *testing.T) {
	left := newTarget("left", -1.0)
	right := newTarget("right", 1.0)

	for i := 0; i < 10; i++ {
		assert.Same(t, left, SelectNearest(rl.Vector3{}, 2.5, []Target{left, right}))
		assert.Same(t, right, SelectNearest(rl.Vector3{}, 2.5, []Target{right, left}))
	}
}

func TestSelectNearestUsesFullDistance(t *testing.T) {
	origin := rl.Vector3{X: 1, Y: 1, Z: 1}
	above := &fakeTarget{name: "above", pos: rl.Vector3{X: 1, Y: 3, Z: 1}, eligible: true}
	diagonal := &fakeTarget{name: "diag", pos: rl.Vector3{X: 2, Y: 2, Z: 2}, eligible: true}

	assert.Same(t, diagonal, SelectNearest(origin, 2.5, []Target{above, diagonal}))
}

func TestSelectNearestIsolatesPanickingTarget(t *testing.T) {
	broken := newTarget("broken", 0.5)
	broken.panicOn = "CanInteract"
	fine := newTarget("fine", 1.5)

	var reported []string
	got := selectNearest(rl.Vector3{}, 2.5, []Target{broken, fine}, func(t Target, method string, r any) {
		reported = append(reported, method)
	})

	assert.Same(t, fine, got)
	assert.Equal(t, []string{"CanInteract"}, reported)
}

func TestSelectNearestIsolatesPanickingAnchor(t *testing.T) {
	broken := newTarget("broken", 0.5)
	broken.panicOn = "Anchor"

	assert.NotPanics(t, func() {
		assert.Nil(t, SelectNearest(rl.Vector3{}, 2.5, []Target{broken}))
	})
}
