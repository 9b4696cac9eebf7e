package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// Postgres-backed implementation of the PhotoRepository port.
type PostgresPhotoRepository struct{ DB *sql.DB }

func NewPostgresPhotoRepository(db *sql.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{DB: db}
}

func (r *PostgresPhotoRepository) Create(ctx context.Context, p *domain.CollectionPhoto) error {
	query := `
	INSERT INTO collection_photos (collection_id, photo_url, photo_type, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING photo_id;
	`
	err := r.DB.QueryRowContext(ctx, query, p.CollectionID, p.PhotoURL, p.PhotoType, p.CreatedAt).Scan(&p.PhotoID)
	if err != nil {
		return fmt.Errorf("create collection photo: insert: %w", err)
	}
	return nil
}

// GetByCollectionAndType returns nil without error when no photo of the
// given kind exists yet.
func (r *PostgresPhotoRepository) GetByCollectionAndType(
	ctx context.Context,
	collectionID int,
	photoType domain.PhotoType,
) (*domain.CollectionPhoto, error) {
	query := `
	SELECT photo_id, collection_id, photo_url, photo_type, created_at
	FROM collection_photos
	WHERE collection_id = $1 AND photo_type = $2;
	`
	var p domain.CollectionPhoto
	err := r.DB.QueryRowContext(ctx, query, collectionID, photoType).Scan(
		&p.PhotoID, &p.CollectionID, &p.PhotoURL, &p.PhotoType, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get collection photo: %w", err)
	}
	return &p, nil
}
