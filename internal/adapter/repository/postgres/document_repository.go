package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/repository"

	"github.com/jmoiron/sqlx"
)

// linkPrefix tags the link inside the additional column.
const linkPrefix = "link:"

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// documentRow mirrors the existing Supabase table layout:
// "Vector_database" (id, chunks, "Vector", "Doc", additional).
type documentRow struct {
	ID         int64          `db:"id"`
	Chunks     sql.NullString `db:"chunks"`
	Vector     sql.NullString `db:"Vector"`
	Doc        sql.NullString `db:"Doc"`
	Additional sql.NullString `db:"additional"`
}

func (r documentRow) toEntity() entity.StoredDocument {
	link := ""
	if strings.HasPrefix(r.Additional.String, linkPrefix) {
		link = strings.TrimSpace(strings.TrimPrefix(r.Additional.String, linkPrefix))
	}
	return entity.StoredDocument{
		ID:           r.ID,
		Chunk:        r.Chunks.String,
		Vector:       r.Vector.String,
		OriginalData: r.Doc.String,
		Link:         link,
	}
}

func encodeAdditional(link string) string {
	if link == "" {
		return ""
	}
	return linkPrefix + link
}

// Insert stores one document row and fills in the generated id.
func (r *documentRepository) Insert(ctx context.Context, doc *entity.StoredDocument) error {
	query := `
		INSERT INTO "Vector_database" ("chunks", "Vector", "Doc", "additional")
		VALUES ($1, $2, $3, $4)
		RETURNING "id"
	`
	return r.db.QueryRowContext(ctx, query,
		doc.Chunk,
		doc.Vector,
		doc.OriginalData,
		encodeAdditional(doc.Link),
	).Scan(&doc.ID)
}

// InsertBatch stores all rows in one transaction.
func (r *documentRepository) InsertBatch(ctx context.Context, docs []entity.StoredDocument) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO "Vector_database" ("chunks", "Vector", "Doc", "additional")
		VALUES ($1, $2, $3, $4)
	`
	for i := range docs {
		if _, err := tx.ExecContext(ctx, query,
			docs[i].Chunk,
			docs[i].Vector,
			docs[i].OriginalData,
			encodeAdditional(docs[i].Link),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecent returns up to limit rows ordered by id descending,
// optionally filtered to one source document.
func (r *documentRepository) ListRecent(ctx context.Context, limit int, docFilter string) ([]entity.StoredDocument, error) {
	var rows []documentRow
	var err error
	if docFilter != "" {
		query := `
			SELECT "id", "chunks", "Vector", "Doc", "additional"
			FROM "Vector_database"
			WHERE "Doc" = $1
			ORDER BY "id" DESC LIMIT $2
		`
		err = r.db.SelectContext(ctx, &rows, query, docFilter, limit)
	} else {
		query := `
			SELECT "id", "chunks", "Vector", "Doc", "additional"
			FROM "Vector_database"
			ORDER BY "id" DESC LIMIT $1
		`
		err = r.db.SelectContext(ctx, &rows, query, limit)
	}
	if err != nil {
		return nil, err
	}

	docs := make([]entity.StoredDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toEntity())
	}
	return docs, nil
}

// Ping runs a minimal query against the table, matching what the
// dashboard uses as its connection probe.
func (r *documentRepository) Ping(ctx context.Context) error {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT "id" FROM "Vector_database" LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	return err
}
