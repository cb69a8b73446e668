package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aqari/internal/domain"
	"aqari/internal/port"
)

type announcementRepo struct {
	db *sqlx.DB
}

// NewAnnouncementRepo creates a new PostgreSQL-backed AnnouncementRepository.
func NewAnnouncementRepo(db *sqlx.DB) port.AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, announcement *domain.Announcement) error {
	announcement.ID = uuid.New()
	now := time.Now().UTC()
	announcement.CreatedAt = now
	announcement.UpdatedAt = now

	query := `INSERT INTO announcements (id, tenant_id, title, body, audience, status,
		publish_at, expires_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		announcement.ID, announcement.TenantID, announcement.Title, announcement.Body,
		announcement.Audience, announcement.Status, announcement.PublishAt, announcement.ExpiresAt,
		announcement.CreatedBy, announcement.CreatedAt, announcement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("announcementRepo.Create: %w", err)
	}
	return nil
}

func (r *announcementRepo) GetByID(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error) {
	var announcement domain.Announcement
	err := r.db.GetContext(ctx, &announcement,
		"SELECT * FROM announcements WHERE id = $1 AND tenant_id = $2", announcementID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("announcementRepo.GetByID: %w", err)
	}
	return &announcement, nil
}

func (r *announcementRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Announcement, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM announcements WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("announcementRepo.ListByTenant count: %w", err)
	}

	var announcements []domain.Announcement
	err = r.db.SelectContext(ctx, &announcements,
		"SELECT * FROM announcements WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("announcementRepo.ListByTenant: %w", err)
	}
	return announcements, total, nil
}

func (r *announcementRepo) Update(ctx context.Context, announcement *domain.Announcement) error {
	announcement.UpdatedAt = time.Now().UTC()
	query := `UPDATE announcements SET title = $1, body = $2, audience = $3, status = $4,
		publish_at = $5, expires_at = $6, updated_at = $7
		WHERE id = $8 AND tenant_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		announcement.Title, announcement.Body, announcement.Audience, announcement.Status,
		announcement.PublishAt, announcement.ExpiresAt, announcement.UpdatedAt,
		announcement.ID, announcement.TenantID)
	if err != nil {
		return fmt.Errorf("announcementRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *announcementRepo) Delete(ctx context.Context, tenantID, announcementID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM announcements WHERE id = $1 AND tenant_id = $2", announcementID, tenantID)
	if err != nil {
		return fmt.Errorf("announcementRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
