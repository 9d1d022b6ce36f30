package browser

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tapbeat/tapbeat/library"
	"github.com/tapbeat/tapbeat/prefabs"
	"github.com/tapbeat/tapbeat/skin"
)

func (b *Browser) face() text.Face {
	return skin.FaceOf(b.skin)
}

func (b *Browser) browserSpec() prefabs.BrowserSpec {
	if b.skin == nil || b.skin.Spec == nil {
		return prefabs.BrowserSpec{ListWidth: 560, ListHeight: 480}
	}
	return b.skin.Spec.Browser
}

func newTheme(face *text.Face, spec prefabs.BrowserSpec) *widget.Theme {
	listColor := spec.ListColor.Or(color.RGBA{0x1c, 0x20, 0x30, 0xff})
	textColor := spec.TextColor.Or(color.White)
	selected := spec.SelectedColor.Or(color.RGBA{0x2a, 0x5d, 0xb0, 0xff})
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: face,
			EntryColor: &widget.ListEntryColor{
				Unselected:          textColor,
				Selected:            color.White,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: selected,
				SelectedBackground:  selected,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: imageui.NewNineSliceColor(listColor),
				Mask: imageui.NewNineSliceColor(listColor),
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  imageui.NewNineSliceColor(listColor),
				Hover: imageui.NewNineSliceColor(listColor),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(selected),
				Hover:   imageui.NewNineSliceColor(selected),
				Pressed: imageui.NewNineSliceColor(selected),
			},
		},
	}
}

func (b *Browser) entries() []any {
	entries := make([]any, len(b.groups))
	for i, g := range b.groups {
		entries[i] = g
	}
	return entries
}

// ensureUI builds the song list the first time the scene is updated.
func (b *Browser) ensureUI() {
	if b.ui != nil {
		return
	}
	spec := b.browserSpec()
	face := b.face()
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newTheme(&face, spec)

	title := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("%d songs", len(b.groups)), &face, spec.TextColor.Or(color.White)),
	)

	b.list = widget.NewList(
		widget.ListOpts.Entries(b.entries()),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if g, ok := e.(*library.Group); ok {
				return g.Label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if b.suppressEvents {
				return
			}
			g, ok := args.Entry.(*library.Group)
			if !ok {
				return
			}
			for i, candidate := range b.groups {
				if candidate == g {
					b.Highlight(i)
					return
				}
			}
		}),
	)
	b.list.GetWidget().MinWidth = int(spec.ListWidth)
	b.list.GetWidget().MinHeight = int(spec.ListHeight)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(b.list)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root

	b.ui = ui
	b.syncSelection()
}

// refreshList replaces the list rows after a resort.
func (b *Browser) refreshList() {
	if b.list == nil {
		return
	}
	b.suppressEvents = true
	b.list.SetEntries(b.entries())
	b.suppressEvents = false
	b.syncSelection()
}

func (b *Browser) syncSelection() {
	g := b.Selected()
	if b.list == nil || g == nil {
		return
	}
	b.suppressEvents = true
	b.list.SetSelectedEntry(g)
	b.suppressEvents = false
}
