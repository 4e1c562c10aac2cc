package export

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"jobtrack/internal/tracker"
)

// Environment variables holding optional static S3 credentials. When unset
// the default AWS credential chain is used.
const (
	EnvS3AccessKeyID     = "JOBTRACK_S3_ACCESS_KEY_ID"
	EnvS3SecretAccessKey = "JOBTRACK_S3_SECRET_ACCESS_KEY"
)

const validateTimeout = 10 * time.Second

// uploader is the subset of *manager.Uploader used here.
type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// bucketHeader is the subset of *s3.Client used by ValidateSetup.
type bucketHeader interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Options configures an S3Destination.
type S3Options struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string // S3-compatible endpoint; forces path-style addressing
	AccessKeyID     string
	SecretAccessKey string
}

// S3Destination uploads exports to a bucket under an optional key prefix.
type S3Destination struct {
	bucket   string
	prefix   string
	uploader uploader
	client   bucketHeader
}

// NewS3Destination loads AWS configuration and builds the upload client.
func NewS3Destination(ctx context.Context, opts S3Options) (*S3Destination, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 export requires s3_bucket to be set")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Destination(opts.Bucket, opts.Prefix, manager.NewUploader(client), client), nil
}

func newS3Destination(bucket, prefix string, up uploader, client bucketHeader) *S3Destination {
	return &S3Destination{
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		uploader: up,
		client:   client,
	}
}

// Put uploads the export and returns its s3:// URI.
func (d *S3Destination) Put(ctx context.Context, name string, r io.Reader, size int64) (string, error) {
	key := d.key(name)
	contentType := "text/csv"
	if strings.HasSuffix(name, ".age") {
		contentType = "application/octet-stream"
	}

	_, err := d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(d.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", d.bucket, key), nil
}

// ValidateSetup checks that the bucket exists and is reachable.
func (d *S3Destination) ValidateSetup() error {
	ctx, cancel := context.WithTimeout(context.Background(), validateTimeout)
	defer cancel()

	if _, err := d.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(d.bucket)}); err != nil {
		return fmt.Errorf("s3 bucket %s not accessible: %w", d.bucket, err)
	}
	return nil
}

func (d *S3Destination) key(name string) string {
	if d.prefix == "" {
		return name
	}
	return path.Join(d.prefix, name)
}

var _ tracker.ExportDestination = (*S3Destination)(nil)
