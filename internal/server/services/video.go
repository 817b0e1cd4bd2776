package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/liftlog/internal/server/videometa"
)

// VideoService manages a user's library of workout videos and the daily pick
// drawn from it.
type VideoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	fetcher     videometa.Fetcher
	log         logging.Logger
	now         func() time.Time
	pick        func(n int) int
}

func NewVideoService(db *sql.DB, m repomanager.RepositoryManager, f videometa.Fetcher, log logging.Logger) *VideoService {
	if log == nil {
		log = logging.Nop{}
	}
	return &VideoService{db: db, repomanager: m, fetcher: f, log: log, now: time.Now, pick: rand.IntN}
}

// Preview fetches metadata without saving anything.
func (s *VideoService) Preview(ctx context.Context, rawURL string) (*videometa.Info, error) {
	return s.fetcher.Fetch(ctx, strings.TrimSpace(rawURL))
}

// Add fetches metadata for rawURL and saves it to the library of userID.
func (s *VideoService) Add(ctx context.Context, userID int64, rawURL string) (*models.Video, error) {
	info, err := s.Preview(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	v := &models.Video{
		UserID:     userID,
		VideoID:    info.VideoID,
		Title:      info.Title,
		Channel:    info.Channel,
		ChannelID:  info.ChannelID,
		Duration:   info.Duration,
		ViewCount:  info.ViewCount,
		LikeCount:  info.LikeCount,
		Categories: info.Categories,
		Tags:       info.Tags,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		v, err = s.repomanager.Videos(tx).Create(ctx, v)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrVideoExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error saving video: %w", err)
	}

	s.log.Info(ctx, "video added", "user_id", userID, "video_id", v.VideoID)
	return v, nil
}

func (s *VideoService) List(ctx context.Context, userID int64) ([]models.Video, error) {
	var list []models.Video
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = s.repomanager.Videos(tx).ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing videos: %w", err)
	}
	if list == nil {
		list = []models.Video{}
	}
	return list, nil
}

// Delete removes videoID from the library. Today's pick goes with it.
func (s *VideoService) Delete(ctx context.Context, userID int64, videoID string) (bool, error) {
	var deleted bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		deleted, err = s.repomanager.Videos(tx).Delete(ctx, userID, strings.TrimSpace(videoID))
		return err
	})
	if err != nil {
		return false, fmt.Errorf("error deleting video: %w", err)
	}
	return deleted, nil
}

// Today returns the video picked for the current UTC day, choosing one at
// random from the library on the first call of the day. An empty library
// yields common.ErrorNotFound.
func (s *VideoService) Today(ctx context.Context, userID int64) (*models.Video, error) {
	day := s.now().UTC().Format(common.DateLayout)

	var picked *models.Video
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Videos(tx)

		v, err := repo.GetDaily(ctx, userID, day)
		if err == nil {
			picked = v
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		list, err := repo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return common.ErrorNotFound
		}

		choice := list[s.pick(len(list))]
		if err := repo.SetDaily(ctx, userID, day, choice.ID); err != nil {
			return err
		}
		picked = &choice
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error picking video: %w", err)
	}
	return picked, nil
}
