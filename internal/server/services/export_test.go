package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLister struct {
	list []models.Workout
	err  error
}

func (l staticLister) ListAll(context.Context, int64) ([]models.Workout, error) {
	return l.list, l.err
}

func exportConfig() *config.Config {
	return &config.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "liftlog",
	}
}

// stubS3 swaps the AWS seams for the duration of the test and records what
// was uploaded.
type stubS3 struct {
	region       string
	baseEndpoint string
	pathStyle    bool
	bucket       string
	key          string
	body         string
	expires      time.Duration
	putErr       error
}

func installStubS3(t *testing.T) *stubS3 {
	t.Helper()
	st := &stubS3{}

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := putObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		putObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		st.region = lo.Region
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		st.baseEndpoint = aws.ToString(opts.BaseEndpoint)
		st.pathStyle = opts.UsePathStyle
		return &s3.Client{}
	}
	newS3PresignClient = func(*s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if st.putErr != nil {
			return nil, st.putErr
		}
		st.bucket = aws.ToString(in.Bucket)
		st.key = aws.ToString(in.Key)
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		st.body = string(b)
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		st.expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "https://s3.test/" + aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)}, nil
	}
	return st
}

func TestExport_UploadsCSVAndSignsLink(t *testing.T) {
	st := installStubS3(t)

	list := []models.Workout{
		{ID: 1, Exercise: "Squat", Sets: 3, Reps: 10, Weight: ptr(135.0), WeightUnit: ptr(models.Pounds),
			WorkoutDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Exercise: "Push-up, wide", Sets: 2, Reps: 20,
			WorkoutDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	s := NewExportService(staticLister{list: list}, exportConfig(), nil)
	s.now = func() time.Time { return fixedNow }

	link, err := s.Export(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", st.region)
	assert.Equal(t, "http://127.0.0.1:9000", st.baseEndpoint)
	assert.True(t, st.pathStyle)
	assert.Equal(t, "liftlog", st.bucket)
	assert.Regexp(t, regexp.MustCompile(`^exports/42/2024/03/09/[0-9a-f-]{36}\.csv$`), st.key)
	assert.Equal(t, ExportLinkValidity, st.expires)
	assert.Equal(t, "https://s3.test/liftlog/"+st.key, link)

	want := "id,exercise,sets,reps,weight,weight_unit,workout_date\n" +
		"1,Squat,3,10,135,lbs,2024-03-09\n" +
		"2,\"Push-up, wide\",2,20,,,2024-03-10\n"
	assert.Equal(t, want, st.body)
}

func TestExport_Disabled(t *testing.T) {
	cfg := exportConfig()
	cfg.S3Bucket = ""
	s := NewExportService(staticLister{}, cfg, nil)

	_, err := s.Export(context.Background(), 1)
	assert.True(t, errors.Is(err, common.ErrExportDisabled), "got %v", err)
}

func TestExport_Failures(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		installStubS3(t)
		s := NewExportService(staticLister{err: errBoom}, exportConfig(), nil)
		_, err := s.Export(context.Background(), 1)
		assert.True(t, errors.Is(err, errBoom), "got %v", err)
	})

	t.Run("config", func(t *testing.T) {
		installStubS3(t)
		loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errBoom
		}
		s := NewExportService(staticLister{}, exportConfig(), nil)
		_, err := s.Export(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error configuring storage")
	})

	t.Run("upload", func(t *testing.T) {
		st := installStubS3(t)
		st.putErr = errBoom
		s := NewExportService(staticLister{}, exportConfig(), nil)
		_, err := s.Export(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error uploading export")
	})

	t.Run("presign", func(t *testing.T) {
		installStubS3(t)
		presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errBoom
		}
		s := NewExportService(staticLister{}, exportConfig(), nil)
		_, err := s.Export(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error signing export link")
	})
}
