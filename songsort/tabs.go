package songsort

import "github.com/tapbeat/tapbeat/common"

const (
	tabStartRatio = 0.6
	tabYRatio     = 0.15

	ActiveAlpha   = 1.0
	InactiveAlpha = 0.7
)

// TabCenter returns the centre of the tab for s in a width*height container
// with tabs of size tabW*tabH.
func TabCenter(s Sort, width, height, tabW, tabH float32) (float32, float32) {
	buttonX := width * tabStartRatio
	offset := (width - buttonX - tabW) / float32(Count-1)
	x := buttonX + tabW/2 + float32(s.ID())*offset
	y := height*tabYRatio - tabH/2 - 2
	return x, y
}

// TabRect is the hit box of the tab for s.
func TabRect(s Sort, width, height, tabW, tabH float32) common.Rect {
	x, y := TabCenter(s, width, height, tabW, tabH)
	return common.CenteredRect(x, y, tabW, tabH)
}

// LabelAndPosition returns the tab label and the tab centre used to place it.
// tabW and tabH are the size of the tab image the skin draws for each sort.
func LabelAndPosition(s Sort, width, height, tabW, tabH float32) (string, float32, float32) {
	x, y := TabCenter(s, width, height, tabW, tabH)
	return s.String(), x, y
}

// LabelBaseline is the shared text y for every tab label: the top of the active tab.
func LabelBaseline(current Sort, width, height, tabW, tabH float32) float32 {
	_, y := TabCenter(current, width, height, tabW, tabH)
	return y - tabH/2
}

// DrawOrder lists sorts in reverse tab order with the active sort last, so it draws on top.
func DrawOrder(current Sort) []Sort {
	order := make([]Sort, 0, Count)
	for i := Count - 1; i >= 0; i-- {
		if s := Sort(i); s != current {
			order = append(order, s)
		}
	}
	if current.Valid() {
		order = append(order, current)
	}
	return order
}

func TabAlpha(s, current Sort) float32 {
	if s == current {
		return ActiveAlpha
	}
	return InactiveAlpha
}

// TabAt returns the sort whose tab contains the point. Tabs drawn later win overlaps.
func TabAt(current Sort, width, height, tabW, tabH, x, y float32) (Sort, bool) {
	order := DrawOrder(current)
	for i := len(order) - 1; i >= 0; i-- {
		if TabRect(order[i], width, height, tabW, tabH).Contains(x, y) {
			return order[i], true
		}
	}
	return current, false
}
