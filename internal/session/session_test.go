package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/interaction"
	"github.com/graceline/byom-backend/pkg/enums"
)

var testCanvas = interaction.Canvas{Width: 400, Height: 400}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(enums.MerchTypeTShirt, "#000000", "Black", enums.GarmentSizeM)
	require.NoError(t, err)
	return s
}

func TestNewSessionRejectsInvalidMerchType(t *testing.T) {
	t.Parallel()

	_, err := New(enums.MerchType("cape"), "#000000", "Black", enums.GarmentSizeM)
	require.ErrorIs(t, err, design.ErrInvalidMerchType)
}

func TestAddTextCommitsAndPrices(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	doc := s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "Grace", FontSize: 24})

	require.Len(t, doc.Placements[enums.PlacementZoneFront].Texts, 1)
	quote := s.Quote()
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(16000)), "got %s", quote.Total)
	assert.True(t, s.CanUndo())
}

func TestEmptyTextDoesNotCommit(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	doc := s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "   "})

	assert.Equal(t, 0, doc.TextCount())
	assert.False(t, s.CanUndo(), "a no-op must not create a history entry")
}

func TestDragCommitsOncePerGesture(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "Grace"})
	id := s.Document().Placements[enums.PlacementZoneFront].Texts[0].ID

	require.True(t, s.PointerDown(testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 200, 200))
	s.PointerMove(testCanvas, 240, 200)
	s.PointerMove(testCanvas, 280, 200)
	live := s.PointerMove(testCanvas, 320, 200)

	// the drag is visible live but not yet committed
	assert.InDelta(t, 80.0, live.Placements[enums.PlacementZoneFront].Texts[0].X, 1e-9)

	s.PointerUp()
	doc, ok := s.Undo()
	require.True(t, ok)
	assert.InDelta(t, 50.0, doc.Placements[enums.PlacementZoneFront].Texts[0].X, 1e-9,
		"one undo reverts the whole gesture, not a single move event")
}

func TestDragBeyondCanvasClamps(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "Grace"})
	id := s.Document().Placements[enums.PlacementZoneFront].Texts[0].ID

	require.True(t, s.PointerDown(testCanvas, enums.PlacementZoneFront, enums.LayerKindText, id, 200, 200))
	s.PointerMove(testCanvas, 600, 200) // 150% of the canvas width
	doc := s.PointerUp()

	assert.Equal(t, 100.0, doc.Placements[enums.PlacementZoneFront].Texts[0].X)
}

func TestThreeCommitsTwoUndosLandsOnFirst(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "one"})
	s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "two"})
	s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "three"})

	_, ok := s.Undo()
	require.True(t, ok)
	doc, ok := s.Undo()
	require.True(t, ok)

	require.Len(t, doc.Placements[enums.PlacementZoneFront].Texts, 1)
	assert.Equal(t, "one", doc.Placements[enums.PlacementZoneFront].Texts[0].Content)
}

func TestUndoAtBottomIsInert(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	doc, ok := s.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, doc.TextCount())
}

func TestResetIsUndoable(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddText(enums.PlacementZoneFront, design.TextSpec{Content: "keep me"})
	doc := s.Reset()
	assert.Equal(t, 0, doc.TextCount())

	doc, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, 1, doc.TextCount(), "reset must be a history entry, not a wipe")
}

func TestMerchSwitchDropsZonesInOneEntry(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddText(enums.PlacementZoneBack, design.TextSpec{Content: "one"})
	s.AddText(enums.PlacementZoneBack, design.TextSpec{Content: "two"})

	doc := s.SetMerchType(enums.MerchTypeHat)
	assert.Equal(t, 0, doc.TextCount())
	_, hasBack := doc.Placements[enums.PlacementZoneBack]
	assert.False(t, hasBack)

	doc, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, enums.MerchTypeTShirt, doc.MerchType)
	assert.Equal(t, 2, doc.TextCount(), "a single undo restores the whole transition")
}

func TestScaleSelectedSticker(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddSticker(enums.PlacementZoneFront, "asset-1", false)
	id := s.Document().Placements[enums.PlacementZoneFront].Stickers[0].ID

	require.True(t, s.PointerDown(testCanvas, enums.PlacementZoneFront, enums.LayerKindSticker, id, 200, 200))
	s.PointerUp()

	doc := s.ScaleSelected(0.5)
	assert.Equal(t, 1.5, doc.Placements[enums.PlacementZoneFront].Stickers[0].Scale)

	doc = s.ScaleSelected(10)
	assert.Equal(t, design.MaxStickerScale, doc.Placements[enums.PlacementZoneFront].Stickers[0].Scale)
}

func TestRemovingSelectedStickerClearsSelection(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AddSticker(enums.PlacementZoneFront, "asset-1", false)
	id := s.Document().Placements[enums.PlacementZoneFront].Stickers[0].ID

	require.True(t, s.PointerDown(testCanvas, enums.PlacementZoneFront, enums.LayerKindSticker, id, 200, 200))
	s.PointerUp()

	s.RemoveLayer(enums.PlacementZoneFront, enums.LayerKindSticker, id)
	_, _, ok := s.SelectedSticker()
	assert.False(t, ok)

	doc := s.ScaleSelected(1)
	assert.Empty(t, doc.Placements[enums.PlacementZoneFront].Stickers)
}

func TestRegistryLifecycle(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	s := newTestSession(t)
	reg.Add(s)

	got, err := reg.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	reg.Remove(s.ID)
	_, err = reg.Get(s.ID)
	require.Error(t, err)
	assert.Equal(t, 0, reg.Len())
}
