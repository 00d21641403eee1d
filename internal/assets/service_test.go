package assets

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
)

type stubAssetRepo struct {
	builtins    []models.AssetEntry
	customs     map[uuid.UUID][]models.AssetEntry
	builtinsErr error
	created     *models.AssetEntry
	createErr   error
}

func (s *stubAssetRepo) Create(ctx context.Context, entry *models.AssetEntry) (*models.AssetEntry, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	entry.ID = uuid.New()
	s.created = entry
	return entry, nil
}

func (s *stubAssetRepo) ListBuiltins(ctx context.Context) ([]models.AssetEntry, error) {
	if s.builtinsErr != nil {
		return nil, s.builtinsErr
	}
	return s.builtins, nil
}

func (s *stubAssetRepo) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.AssetEntry, error) {
	return s.customs[ownerID], nil
}

func TestListCatalogMergesOwnerUploads(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	repo := &stubAssetRepo{
		builtins: []models.AssetEntry{{ID: uuid.New(), Name: "Flame", Kind: enums.AssetKindBuiltin}},
		customs: map[uuid.UUID][]models.AssetEntry{
			owner: {{ID: uuid.New(), Name: "Mine", Kind: enums.AssetKindCustom}},
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	anon, err := svc.ListCatalog(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, anon, 1)
	assert.Equal(t, "Flame", anon[0].Name)

	known, err := svc.ListCatalog(context.Background(), &owner)
	require.NoError(t, err)
	require.Len(t, known, 2)
	assert.Equal(t, "Mine", known[1].Name)
}

func TestListCatalogReportsDependencyFailure(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubAssetRepo{builtinsErr: errors.New("connection refused")})
	require.NoError(t, err)

	_, err = svc.ListCatalog(context.Background(), nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestRegisterUploadValidatesInput(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubAssetRepo{})
	require.NoError(t, err)

	cases := []struct {
		name  string
		owner uuid.UUID
		input RegisterUploadInput
	}{
		{"missingOwner", uuid.Nil, RegisterUploadInput{Name: "x", ImageURL: "https://cdn.example.com/x.png"}},
		{"missingName", uuid.New(), RegisterUploadInput{Name: "  ", ImageURL: "https://cdn.example.com/x.png"}},
		{"missingURL", uuid.New(), RegisterUploadInput{Name: "x", ImageURL: ""}},
		{"relativeURL", uuid.New(), RegisterUploadInput{Name: "x", ImageURL: "/uploads/x.png"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUpload(context.Background(), tc.owner, tc.input)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}

func TestRegisterUploadStoresCustomEntry(t *testing.T) {
	t.Parallel()

	repo := &stubAssetRepo{}
	svc, err := NewService(repo)
	require.NoError(t, err)

	owner := uuid.New()
	dto, err := svc.RegisterUpload(context.Background(), owner, RegisterUploadInput{
		Name:     "  Band Logo ",
		ImageURL: "https://cdn.example.com/logo.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Band Logo", dto.Name)
	assert.Equal(t, enums.AssetKindCustom, dto.Kind)
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.OwnerID)
	assert.Equal(t, owner, *repo.created.OwnerID)
}
