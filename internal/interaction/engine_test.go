package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/pkg/enums"
)

var testCanvas = Canvas{OriginX: 100, OriginY: 50, Width: 400, Height: 400}

func docWithFrontText(t *testing.T) (design.Document, string) {
	t.Helper()
	doc, err := design.NewDocument(enums.MerchTypeTShirt, "#000000", "Black", enums.GarmentSizeM)
	require.NoError(t, err)
	doc = design.AddText(doc, enums.PlacementZoneFront, design.TextSpec{Content: "Grace", FontSize: 24})
	return doc, doc.Placements[enums.PlacementZoneFront].Texts[0].ID
}

func TestCanvasToPercent(t *testing.T) {
	t.Parallel()

	x, y := testCanvas.ToPercent(300, 250)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 50.0, y)

	x, y = testCanvas.ToPercent(100, 450)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 100.0, y)
}

func TestPointerDownRequiresMountedCanvas(t *testing.T) {
	t.Parallel()

	doc, id := docWithFrontText(t)
	engine := NewEngine()

	ok := engine.PointerDown(doc, Canvas{}, enums.PlacementZoneFront, enums.LayerKindText, id, 300, 250)
	assert.False(t, ok)
	assert.False(t, engine.Dragging())
}

func TestPointerDownUnknownLayerIsNoOp(t *testing.T) {
	t.Parallel()

	doc, _ := docWithFrontText(t)
	engine := NewEngine()

	ok := engine.PointerDown(doc, testCanvas, enums.PlacementZoneFront, enums.LayerKindText, "missing", 300, 250)
	assert.False(t, ok)
}

func TestDragIsOffsetRelative(t *testing.T) {
	t.Parallel()

	doc, id := docWithFrontText(t)
	engine := NewEngine()

	// layer center is (50,50); grab it 10% to the right of center
	ok := engine.PointerDown(doc, testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 340, 250)
	require.True(t, ok)

	// move pointer to canvas center: layer should end 10% left of it,
	// not jump underneath the pointer
	live, moved := engine.PointerMove(doc, testCanvas, 300, 250)
	require.True(t, moved)

	layer := live.Placements[enums.PlacementZoneFront].Texts[0]
	assert.InDelta(t, 40.0, layer.X, 1e-9)
	assert.InDelta(t, 50.0, layer.Y, 1e-9)
}

func TestDragClampsOutsideCanvas(t *testing.T) {
	t.Parallel()

	doc, id := docWithFrontText(t)
	engine := NewEngine()

	require.True(t, engine.PointerDown(doc, testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 300, 250))

	// simulate a pointer at 150% of the canvas width
	live, moved := engine.PointerMove(doc, testCanvas, 700, 250)
	require.True(t, moved)

	layer := live.Placements[enums.PlacementZoneFront].Texts[0]
	assert.Equal(t, 100.0, layer.X)
}

func TestPointerMoveWithoutDragIsNoOp(t *testing.T) {
	t.Parallel()

	doc, _ := docWithFrontText(t)
	engine := NewEngine()

	live, moved := engine.PointerMove(doc, testCanvas, 300, 250)
	assert.False(t, moved)
	assert.Equal(t, doc, live)
}

func TestPointerUpEndsDrag(t *testing.T) {
	t.Parallel()

	doc, id := docWithFrontText(t)
	engine := NewEngine()

	require.True(t, engine.PointerDown(doc, testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 300, 250))
	assert.True(t, engine.PointerUp(), "release of an active drag signals a commit")
	assert.False(t, engine.Dragging())

	assert.False(t, engine.PointerUp(), "stray release must be a no-op")
}

func TestPointerLeaveCommitsLikeRelease(t *testing.T) {
	t.Parallel()

	doc, id := docWithFrontText(t)
	engine := NewEngine()

	require.True(t, engine.PointerDown(doc, testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 300, 250))
	assert.True(t, engine.PointerLeave())
	assert.False(t, engine.Dragging())
}

func TestStickerPointerDownSelects(t *testing.T) {
	t.Parallel()

	doc, err := design.NewDocument(enums.MerchTypeTShirt, "#000000", "Black", enums.GarmentSizeM)
	require.NoError(t, err)
	doc = design.AddSticker(doc, enums.PlacementZoneBack, "asset-1", false)
	id := doc.Placements[enums.PlacementZoneBack].Stickers[0].ID

	engine := NewEngine()
	require.True(t, engine.PointerDown(doc, testCanvas, enums.PlacementZoneBack, enums.LayerKindSticker, id, 300, 250))

	zone, selected, ok := engine.SelectedSticker()
	require.True(t, ok)
	assert.Equal(t, enums.PlacementZoneBack, zone)
	assert.Equal(t, id, selected)

	// selection survives the end of the drag
	engine.PointerUp()
	_, _, ok = engine.SelectedSticker()
	assert.True(t, ok)

	engine.ClearSelection()
	_, _, ok = engine.SelectedSticker()
	assert.False(t, ok)
}

func TestMovesApplyInArrivalOrder(t *testing.T) {
	t.Parallel()

	doc, id := docWithFrontText(t)
	engine := NewEngine()

	require.True(t, engine.PointerDown(doc, testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 300, 250))

	live := doc
	var moved bool
	for _, px := range []float64{320, 360, 180} {
		live, moved = engine.PointerMove(live, testCanvas, px, 250)
		require.True(t, moved)
	}

	// only the last position matters
	layer := live.Placements[enums.PlacementZoneFront].Texts[0]
	assert.InDelta(t, 20.0, layer.X, 1e-9)
}
