package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteColumns = pgColumns

func scanSQLite(row rowScanner) (*models.Video, error) {
	v := &models.Video{}
	var categories, tags string
	var created int64
	err := row.Scan(&v.ID, &v.UserID, &v.VideoID, &v.Title, &v.Channel, &v.ChannelID, &v.Duration,
		&v.ViewCount, &v.LikeCount, &categories, &tags, &created)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = time.Unix(created, 0).UTC()
	if err := decodeLists(v, categories, tags); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	categories, tags, err := encodeLists(v)
	if err != nil {
		return nil, err
	}

	var created int64
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO videos (user_id, video_id, title, channel, channel_id, duration, view_count, like_count, categories, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id, created_at`,
		v.UserID, v.VideoID, v.Title, v.Channel, v.ChannelID, v.Duration,
		v.ViewCount, v.LikeCount, categories, tags).Scan(&v.ID, &created)
	if err != nil {
		return nil, mapCreateError(err)
	}
	v.CreatedAt = time.Unix(created, 0).UTC()
	return v, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM videos v WHERE v.user_id = ? ORDER BY v.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Video, 0)
	for rows.Next() {
		v, err := scanSQLite(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID int64, videoID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE user_id = ? AND video_id = ?`, userID, videoID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) GetDaily(ctx context.Context, userID int64, day string) (*models.Video, error) {
	v, err := scanSQLite(r.db.QueryRowContext(ctx,
		`SELECT `+sqliteColumns+`
		 FROM daily_videos d JOIN videos v ON v.id = d.video_pk
		 WHERE d.user_id = ? AND d.day = ?`, userID, day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) SetDaily(ctx context.Context, userID int64, day string, videoPK int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_videos (user_id, day, video_pk) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, day) DO UPDATE SET video_pk = excluded.video_pk`,
		userID, day, videoPK)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
