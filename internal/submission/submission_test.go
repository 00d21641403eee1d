package submission

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/pricing"
	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
)

func newDoc(t *testing.T) design.Document {
	t.Helper()
	doc, err := design.NewDocument(enums.MerchTypeTShirt, "#000000", "Black", enums.GarmentSizeM)
	require.NoError(t, err)
	return doc
}

func TestToCartItemCarriesIndependentCopy(t *testing.T) {
	t.Parallel()

	doc := newDoc(t)
	doc = design.AddText(doc, enums.PlacementZoneFront, design.TextSpec{Content: "Grace", FontSize: 24})

	item := ToCartItem(doc, pricing.Compute(doc))
	assert.NotEqual(t, uuid.Nil, item.ProductID)
	assert.Equal(t, 1, item.Qty)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(16000)), "got %s", item.UnitPrice)
	assert.Equal(t, enums.GarmentSizeM, item.Size)

	// mutating the cart copy must not touch the session document
	set := item.Document.Placements[enums.PlacementZoneFront]
	set.Texts[0].Content = "mutated"
	item.Document.Placements[enums.PlacementZoneFront] = set
	assert.Equal(t, "Grace", doc.Placements[enums.PlacementZoneFront].Texts[0].Content)
}

func TestPrimaryZonePicksBusiest(t *testing.T) {
	t.Parallel()

	doc := newDoc(t)
	doc = design.AddText(doc, enums.PlacementZoneBack, design.TextSpec{Content: "a"})
	doc = design.AddSticker(doc, enums.PlacementZoneBack, "asset-1", false)
	doc = design.AddText(doc, enums.PlacementZoneFront, design.TextSpec{Content: "b"})

	assert.Equal(t, enums.PlacementZoneBack, PrimaryZone(doc))
}

func TestPrimaryZoneTieBreaksFrontFirst(t *testing.T) {
	t.Parallel()

	doc := newDoc(t)
	doc = design.AddText(doc, enums.PlacementZoneFront, design.TextSpec{Content: "a"})
	doc = design.AddText(doc, enums.PlacementZoneBack, design.TextSpec{Content: "b"})

	assert.Equal(t, enums.PlacementZoneFront, PrimaryZone(doc))

	empty := newDoc(t)
	assert.Equal(t, enums.PlacementZoneFront, PrimaryZone(empty))
}

func TestToPersistencePayloadFlattensText(t *testing.T) {
	t.Parallel()

	doc := newDoc(t)
	doc = design.AddText(doc, enums.PlacementZoneFront, design.TextSpec{Content: "Grace"})
	doc = design.AddText(doc, enums.PlacementZoneBack, design.TextSpec{Content: "2026"})

	payload, err := ToPersistencePayload(doc)
	require.NoError(t, err)

	assert.Equal(t, "Grace, 2026", payload.Description)
	assert.Equal(t, []string{"Grace", "2026"}, payload.TextContents)
	assert.Equal(t, int64(17000), payload.TotalCents)
	assert.False(t, payload.RequiresApproval)
	assert.NotEmpty(t, payload.Config)

	decoded, err := design.Unmarshal(payload.Config)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.TextCount())
}

func TestToPersistencePayloadFlagsCustomAssets(t *testing.T) {
	t.Parallel()

	doc := newDoc(t)
	doc = design.AddSticker(doc, enums.PlacementZoneFront, "upload-1", true)

	payload, err := ToPersistencePayload(doc)
	require.NoError(t, err)
	assert.True(t, payload.RequiresApproval)
}

type stubDesignCreator struct {
	created *models.Design
	err     error
	gotOwn  uuid.UUID
	gotPay  DesignPayload
}

func (s *stubDesignCreator) Create(ctx context.Context, ownerID uuid.UUID, payload DesignPayload) (*models.Design, error) {
	s.gotOwn = ownerID
	s.gotPay = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func TestSubmitPersistsDesign(t *testing.T) {
	t.Parallel()

	record := &models.Design{ID: uuid.New(), Status: enums.DesignStatusDraft}
	stub := &stubDesignCreator{created: record}
	submitter, err := NewSubmitter(stub, nil)
	require.NoError(t, err)

	ownerID := uuid.New()
	doc := newDoc(t)
	doc = design.AddText(doc, enums.PlacementZoneFront, design.TextSpec{Content: "Grace"})

	got, err := submitter.Submit(context.Background(), ownerID, doc, nil)
	require.NoError(t, err)
	assert.Same(t, record, got)
	assert.Equal(t, ownerID, stub.gotOwn)
	assert.Equal(t, "Grace", stub.gotPay.Description)
}

func TestSubmitRefusesCustomAssetWithoutUpload(t *testing.T) {
	t.Parallel()

	stub := &stubDesignCreator{created: &models.Design{}}
	submitter, err := NewSubmitter(stub, nil)
	require.NoError(t, err)

	doc := newDoc(t)
	doc = design.AddSticker(doc, enums.PlacementZoneFront, "upload-1", true)

	_, err = submitter.Submit(context.Background(), uuid.New(), doc, nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
	assert.Equal(t, uuid.Nil, stub.gotOwn, "persistence must not be reached")
}

func TestSubmitAllowsCustomAssetWithUpload(t *testing.T) {
	t.Parallel()

	record := &models.Design{ID: uuid.New(), Status: enums.DesignStatusPendingApproval}
	submitter, err := NewSubmitter(&stubDesignCreator{created: record}, nil)
	require.NoError(t, err)

	doc := newDoc(t)
	doc = design.AddSticker(doc, enums.PlacementZoneFront, "upload-1", true)

	got, err := submitter.Submit(context.Background(), uuid.New(), doc, []string{"uploads/sticker.png"})
	require.NoError(t, err)
	assert.Equal(t, enums.DesignStatusPendingApproval, got.Status)
}

func TestSubmitIgnoresResponseAfterCancellation(t *testing.T) {
	t.Parallel()

	submitter, err := NewSubmitter(&stubDesignCreator{created: &models.Design{}}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = submitter.Submit(ctx, uuid.New(), newDoc(t), nil)
	require.Error(t, err)
}

func TestSubmitRequiresOwner(t *testing.T) {
	t.Parallel()

	submitter, err := NewSubmitter(&stubDesignCreator{}, nil)
	require.NoError(t, err)

	_, err = submitter.Submit(context.Background(), uuid.Nil, newDoc(t), nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
