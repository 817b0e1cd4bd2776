package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	sc "github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

// ExportLinkValidity is how long a download link stays usable.
const ExportLinkValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// WorkoutLister is the part of WorkoutService the exporter reads from.
type WorkoutLister interface {
	ListAll(ctx context.Context, userID int64) ([]models.Workout, error)
}

// ExportService writes CSV snapshots of a user's workouts to S3-compatible
// storage and hands back a short-lived download link.
type ExportService struct {
	workouts WorkoutLister
	config   *sc.Config
	log      logging.Logger
	now      func() time.Time
}

func NewExportService(w WorkoutLister, cfg *sc.Config, log logging.Logger) *ExportService {
	if log == nil {
		log = logging.Nop{}
	}
	return &ExportService{workouts: w, config: cfg, log: log, now: time.Now}
}

// Enabled reports whether a bucket is configured.
func (s *ExportService) Enabled() bool {
	return s.config.S3Bucket != ""
}

func (s *ExportService) storageKey(userID int64) string {
	d := s.now().UTC()
	return fmt.Sprintf("exports/%d/%04d/%02d/%02d/%v.csv", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export uploads the workouts of userID as CSV and returns a presigned GET
// URL valid for ExportLinkValidity.
func (s *ExportService) Export(ctx context.Context, userID int64) (string, error) {
	if !s.Enabled() {
		return "", common.ErrExportDisabled
	}

	list, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return "", err
	}

	body, err := RenderCSV(list)
	if err != nil {
		return "", fmt.Errorf("error rendering export: %w", err)
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("error configuring storage: %w", err)
	}

	bucket := s.config.S3Bucket
	key := s.storageKey(userID)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ExportLinkValidity))
	if err != nil {
		return "", fmt.Errorf("error signing export link: %w", err)
	}

	s.log.Info(ctx, "workouts exported", "user_id", userID, "key", key, "rows", len(list))
	return req.URL, nil
}

var csvHeader = []string{"id", "exercise", "sets", "reps", "weight", "weight_unit", "workout_date"}

// RenderCSV formats workouts with a header row. Bodyweight rows leave the
// weight columns empty.
func RenderCSV(list []models.Workout) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, wo := range list {
		weight, unit := "", ""
		if wo.Weight != nil {
			weight = strconv.FormatFloat(*wo.Weight, 'f', -1, 64)
		}
		if wo.WeightUnit != nil {
			unit = string(*wo.WeightUnit)
		}
		rec := []string{
			strconv.FormatInt(wo.ID, 10),
			wo.Exercise,
			strconv.Itoa(wo.Sets),
			strconv.Itoa(wo.Reps),
			weight,
			unit,
			wo.WorkoutDate.Format(common.DateLayout),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
