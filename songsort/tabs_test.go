package songsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabCenterLayout(t *testing.T) {
	const w, h, tw, th = 1000, 600, 100, 40

	x0, y0 := TabCenter(Title, w, h, tw, th)
	assert.InDelta(t, 650, x0, 0.001)
	assert.InDelta(t, 600*0.15-20-2, y0, 0.001)

	// (1000 - 600 - 100) / 4 = 75 between tabs
	x4, _ := TabCenter(Length, w, h, tw, th)
	assert.InDelta(t, 650+4*75, x4, 0.001)
	assert.LessOrEqual(t, x4+tw/2, float32(w))
}

func TestLabelAndPosition(t *testing.T) {
	label, x, y := LabelAndPosition(Artist, 1000, 600, 100, 40)
	assert.Equal(t, "Artist", label)
	ex, ey := TabCenter(Artist, 1000, 600, 100, 40)
	assert.Equal(t, ex, x)
	assert.Equal(t, ey, y)
	assert.InDelta(t, ey-20, LabelBaseline(Artist, 1000, 600, 100, 40), 0.001)
}

func TestLabelAndPositionFollowsTabImageSize(t *testing.T) {
	// A larger tab image moves the Title tab right and up.
	_, xs, ys := LabelAndPosition(Title, 1000, 600, 100, 40)
	_, xl, yl := LabelAndPosition(Title, 1000, 600, 160, 60)
	assert.InDelta(t, xs+30, xl, 0.001)
	assert.InDelta(t, ys-10, yl, 0.001)
	assert.True(t, TabRect(Title, 1000, 600, 160, 60).Contains(xl, yl))
}

func TestDrawOrderActiveLast(t *testing.T) {
	for _, current := range All() {
		order := DrawOrder(current)
		assert.Len(t, order, Count)
		assert.Equal(t, current, order[len(order)-1])
		seen := map[Sort]bool{}
		for _, s := range order {
			seen[s] = true
		}
		assert.Len(t, seen, Count)
	}
	assert.Equal(t, []Sort{Length, BPM, Creator, Artist, Title}, DrawOrder(Title))
	assert.Equal(t, []Sort{Length, Creator, Artist, Title, BPM}, DrawOrder(BPM))
}

func TestTabAlpha(t *testing.T) {
	assert.Equal(t, float32(1.0), TabAlpha(BPM, BPM))
	assert.InDelta(t, 0.7, TabAlpha(Title, BPM), 0.0001)
}

func TestTabAt(t *testing.T) {
	const w, h, tw, th = 1000, 600, 100, 40
	for _, s := range All() {
		x, y := TabCenter(s, w, h, tw, th)
		got, ok := TabAt(Title, w, h, tw, th, x, y)
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := TabAt(Title, w, h, tw, th, 10, 10)
	assert.False(t, ok)
}

func TestTabAtOverlapPrefersActive(t *testing.T) {
	// Wide tabs overlap their neighbours; the active tab is drawn last and wins.
	const w, h, tw, th = 1000, 600, 300, 40
	x, y := TabCenter(Creator, w, h, tw, th)
	got, ok := TabAt(Artist, w, h, tw, th, x-40, y)
	assert.True(t, ok)
	assert.Equal(t, Artist, got)
}
