package filemgr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const cacheControl = "public, max-age=31536000, immutable"

// BucketStore buffers uploads in memory and writes them to object storage
// under the uploads/ prefix with a long-lived cache header.
type BucketStore struct {
	Client  *s3.Client
	Bucket  string
	BaseURL string
}

// NewBucketStore builds the production store. S3_ENDPOINT and static
// credentials are optional; absent, the default chain applies.
func NewBucketStore(ctx context.Context, bucket, baseURL string) (*BucketStore, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(regionOrDefault()),
	}
	if id := os.Getenv("S3_ACCESS_KEY_ID"); id != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(id, os.Getenv("S3_SECRET_ACCESS_KEY"), ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if ep := os.Getenv("S3_ENDPOINT"); ep != "" {
			o.BaseEndpoint = aws.String(ep)
			o.UsePathStyle = true
		}
	})

	return &BucketStore{Client: client, Bucket: bucket, BaseURL: baseURL}, nil
}

func regionOrDefault() string {
	if r := os.Getenv("S3_REGION"); r != "" {
		return r
	}
	return "us-east-1"
}

func (s *BucketStore) key(name string) string {
	return "uploads/" + name
}

func (s *BucketStore) Save(ctx context.Context, name string, r io.Reader, contentType string) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.Bucket),
		Key:          aws.String(s.key(name)),
		Body:         bytes.NewReader(buf),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	})
	return err
}

func (s *BucketStore) PublicURL(name string) (string, string) {
	mediaPath := "/media/" + name
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, regionOrDefault(), s.key(name)), mediaPath
}

// Open streams a stored object for the /media handler. The caller closes
// the returned reader.
func (s *BucketStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, "", err
	}
	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}
