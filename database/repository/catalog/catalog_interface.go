package catalogRepo

import (
	"context"

	"templeseva/models"
)

// CatalogRepository resolves the pooja and temple a request refers to.
// Both getters return nil, nil when the record is absent or deleted.
type CatalogRepository interface {
	GetPooja(ctx context.Context, id string) (*models.Pooja, error)
	GetTemple(ctx context.Context, id string) (*models.Temple, error)
}
