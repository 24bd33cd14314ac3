package database

import (
	"context"

	"qr-attendance/app/models"
)

func (s *Store) GetQRTagByCode(ctx context.Context, code string) (*models.QRTag, error) {
	tag := &models.QRTag{}
	query := `SELECT id, estudiante_id, qr_code FROM qr WHERE qr_code = $1`

	if err := s.db.GetContext(ctx, tag, query, code); err != nil {
		return nil, mapError(err, "get qr tag by code")
	}
	return tag, nil
}
