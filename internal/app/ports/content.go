package ports

import (
	"context"

	"cursedwarden/internal/domain/content"
)

type ContentProvider interface {
	Catalog(ctx context.Context) (content.Catalog, error)
}
