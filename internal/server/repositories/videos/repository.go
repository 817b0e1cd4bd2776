// Package videos stores each user's workout video library and the video
// picked for a given day.
package videos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type Repository interface {
	// Create fills in ID. The same video twice for one user yields
	// common.ErrVideoExists.
	Create(ctx context.Context, v *models.Video) (*models.Video, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Video, error)
	// Delete removes by YouTube id and reports whether a row went away.
	Delete(ctx context.Context, userID int64, videoID string) (bool, error)
	// GetDaily returns common.ErrorNotFound when nothing was picked for day.
	GetDaily(ctx context.Context, userID int64, day string) (*models.Video, error)
	SetDaily(ctx context.Context, userID int64, day string, videoPK int64) error
}

type rowScanner interface {
	Scan(dest ...any) error
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(s string) ([]string, error) {
	out := []string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeLists(v *models.Video) (string, string, error) {
	categories, err := encodeList(v.Categories)
	if err != nil {
		return "", "", err
	}
	tags, err := encodeList(v.Tags)
	if err != nil {
		return "", "", err
	}
	return categories, tags, nil
}

func decodeLists(v *models.Video, categories, tags string) error {
	var err error
	if v.Categories, err = decodeList(categories); err != nil {
		return fmt.Errorf("video %d categories: %w", v.ID, err)
	}
	if v.Tags, err = decodeList(tags); err != nil {
		return fmt.Errorf("video %d tags: %w", v.ID, err)
	}
	return nil
}

func mapCreateError(err error) error {
	if _, ok := dbx.UniqueViolation(err); ok {
		return common.ErrVideoExists
	}
	return fmt.Errorf("db error: %w", err)
}
