package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 fetches a document object from an S3 bucket.
type S3 struct {
	bucket string
	key    string
	client *s3.Client
}

var _ Fetcher = (*S3)(nil)

type S3Option func(*S3)

func WithS3Bucket(bucket string) S3Option {
	return func(s *S3) {
		s.bucket = bucket
	}
}

func WithS3Key(key string) S3Option {
	return func(s *S3) {
		s.key = key
	}
}

func WithS3Client(clt *s3.Client) S3Option {
	return func(s *S3) {
		s.client = clt
	}
}

// NewS3 creates an S3 fetcher and verifies the object exists.
func NewS3(ctx context.Context, opts ...S3Option) (*S3, error) {
	ret := new(S3)
	for _, opt := range opts {
		opt(ret)
	}
	headObjInput := &s3.HeadObjectInput{
		Bucket: aws.String(ret.bucket),
		Key:    aws.String(ret.key),
	}
	if _, err := ret.client.HeadObject(ctx, headObjInput); err != nil {
		return nil, fmt.Errorf("failed to get object metadata: %w", err)
	}
	return ret, nil
}

func (s *S3) Fetch(ctx context.Context) ([]byte, error) {
	getObjInput := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	}
	resp, err := s.client.GetObject(ctx, getObjInput)
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (s *S3) Meta() map[string]string {
	return map[string]string{
		"source": "s3",
		"bucket": s.bucket,
		"key":    s.key,
	}
}
