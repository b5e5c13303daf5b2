package repository

import (
	"context"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"

	"github.com/google/uuid"
)

const (
	createHotelSQL = `
INSERT INTO hotels (id, name, location, description, img_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	hotelExistsSQL = `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1)`
)

type HotelRepository struct{}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{}
}

func (r *HotelRepository) Create(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error {
	_, err := tx.Exec(ctx, createHotelSQL, h.ID(), h.Name(), h.Location(), h.Description(), h.ImgURL(), h.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) Exists(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, hotelExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check hotel", err)
	}
	return exists, nil
}
