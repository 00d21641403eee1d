package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graceline/byom-backend/internal/design"
	"github.com/graceline/byom-backend/internal/submission"
	"github.com/graceline/byom-backend/pkg/db/models"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
)

// Service exposes the server-synchronized cart keyed by access-token
// subject.
type Service interface {
	Add(ctx context.Context, subject string, item submission.CartLineItem) (*models.CartRecord, error)
	GetActive(ctx context.Context, subject string) (*models.CartRecord, error)
}

type cartRepository interface {
	FindActiveBySubject(ctx context.Context, subject string) (*models.CartRecord, error)
	Create(ctx context.Context, record *models.CartRecord) (*models.CartRecord, error)
	AddItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	UpdateTotal(ctx context.Context, cartID uuid.UUID, totalCents int64) error
}

// cartCache mirrors a small cart summary for cheap badge reads.
type cartCache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CartKey(subject string) string
}

type service struct {
	repo  cartRepository
	cache cartCache
	logg  *logger.Logger
}

// NewService constructs the synced cart service. The cache is
// optional; everything authoritative lives in the database.
func NewService(repo cartRepository, cache cartCache, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo, cache: cache, logg: logg}, nil
}

// cartSummary is the cached shape.
type cartSummary struct {
	CartID     uuid.UUID `json:"cart_id"`
	ItemCount  int       `json:"item_count"`
	TotalCents int64     `json:"total_cents"`
}

// Add appends a BYOM line to the subject's active cart, creating the
// cart on first use. The full design document rides along in the item
// config so later views can re-render the customization.
func (s *service) Add(ctx context.Context, subject string, item submission.CartLineItem) (*models.CartRecord, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token subject required")
	}
	if item.Qty <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "qty must be positive")
	}

	config, err := design.Marshal(item.Document)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize cart item config")
	}

	record, err := s.repo.FindActiveBySubject(ctx, subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record, err = s.repo.Create(ctx, &models.CartRecord{Subject: subject})
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	line := &models.CartItem{
		CartID:         record.ID,
		ProductID:      item.ProductID,
		Name:           item.Name,
		MerchType:      item.MerchType,
		Size:           item.Size,
		Color:          string(item.Color),
		ColorName:      item.ColorName,
		Qty:            item.Qty,
		UnitPriceCents: item.UnitPrice.IntPart(),
		Config:         config,
	}
	if _, err := s.repo.AddItem(ctx, line); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}

	record.Items = append(record.Items, *line)
	record.TotalCents = sumItems(record.Items)
	if err := s.repo.UpdateTotal(ctx, record.ID, record.TotalCents); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart total")
	}

	s.cacheSummary(ctx, subject, record)
	return record, nil
}

// GetActive returns the subject's active cart.
func (s *service) GetActive(ctx context.Context, subject string) (*models.CartRecord, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "access token subject required")
	}
	record, err := s.repo.FindActiveBySubject(ctx, subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active cart")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return record, nil
}

// cacheSummary is best effort; a cache miss never blocks checkout.
func (s *service) cacheSummary(ctx context.Context, subject string, record *models.CartRecord) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(cartSummary{
		CartID:     record.ID,
		ItemCount:  len(record.Items),
		TotalCents: record.TotalCents,
	})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CartKey(subject), payload, 0); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "cart summary cache write failed")
	}
}

func sumItems(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPriceCents * int64(item.Qty)
	}
	return total
}
