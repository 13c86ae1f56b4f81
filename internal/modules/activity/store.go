package activity

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"portfolio/internal/domain"
)

const defaultRecentLimit = 50

// Store reads and writes activity_log with plain SQL.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, e *domain.ActivityLog) error {
	query := `
		INSERT INTO activity_log (admin_id, action, details, ip_address, created_at)
		VALUES (:admin_id, :action, :details, :ip_address, :created_at)
	`
	_, err := s.db.NamedExecContext(ctx, query, e)
	return err
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	query := s.db.Rebind(`
		SELECT id, admin_id, action, details, ip_address, created_at
		FROM activity_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)
	entries := []domain.ActivityLog{}
	if err := s.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteOlderThan removes entries created before cutoff and reports how
// many went away.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := s.db.Rebind(`DELETE FROM activity_log WHERE created_at < ?`)
	res, err := s.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
