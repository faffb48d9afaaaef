package repository

import (
	"context"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"
)

type DocumentRepository interface {
	Insert(ctx context.Context, doc *entity.StoredDocument) error
	InsertBatch(ctx context.Context, docs []entity.StoredDocument) error
	ListRecent(ctx context.Context, limit int, docFilter string) ([]entity.StoredDocument, error)
	Ping(ctx context.Context) error
}
