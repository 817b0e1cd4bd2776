package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgColumns = `v.id, v.user_id, v.video_id, v.title, v.channel, v.channel_id, v.duration,
	v.view_count, v.like_count, v.categories, v.tags, v.created_at`

func scanPostgres(row rowScanner) (*models.Video, error) {
	v := &models.Video{}
	var categories, tags string
	err := row.Scan(&v.ID, &v.UserID, &v.VideoID, &v.Title, &v.Channel, &v.ChannelID, &v.Duration,
		&v.ViewCount, &v.LikeCount, &categories, &tags, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := decodeLists(v, categories, tags); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	categories, tags, err := encodeLists(v)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO videos (user_id, video_id, title, channel, channel_id, duration, view_count, like_count, categories, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err = r.db.QueryRowContext(ctx, query, v.UserID, v.VideoID, v.Title, v.Channel, v.ChannelID, v.Duration,
		v.ViewCount, v.LikeCount, categories, tags).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return nil, mapCreateError(err)
	}
	return v, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pgColumns+` FROM videos v WHERE v.user_id = $1 ORDER BY v.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Video, 0)
	for rows.Next() {
		v, err := scanPostgres(rows)
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

func (r *PostgresRepository) Delete(ctx context.Context, userID int64, videoID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE user_id = $1 AND video_id = $2`, userID, videoID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) GetDaily(ctx context.Context, userID int64, day string) (*models.Video, error) {
	query := `SELECT ` + pgColumns + `
		FROM daily_videos d JOIN videos v ON v.id = d.video_pk
		WHERE d.user_id = $1 AND d.day = $2`

	v, err := scanPostgres(r.db.QueryRowContext(ctx, query, userID, day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) SetDaily(ctx context.Context, userID int64, day string, videoPK int64) error {
	query := `
		INSERT INTO daily_videos (user_id, day, video_pk) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day) DO UPDATE SET video_pk = EXCLUDED.video_pk
	`
	if _, err := r.db.ExecContext(ctx, query, userID, day, videoPK); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
