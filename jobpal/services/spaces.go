package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type SpacesSettings struct {
	Key      string
	Secret   string
	Region   string
	Bucket   string
	Endpoint string
	Prefix   string
}

// SpacesService stores rendered images in a DigitalOcean Space.
type SpacesService struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

func NewSpacesService(ctx context.Context, settings SpacesSettings) (*SpacesService, error) {
	endpoint := settings.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.digitaloceanspaces.com", settings.Region)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.Key, settings.Secret, "")),
		awsconfig.WithRegion(settings.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &SpacesService{
		client: client,
		bucket: settings.Bucket,
		region: settings.Region,
		prefix: strings.Trim(settings.Prefix, "/"),
	}, nil
}

// ObjectKey places name under the prefix and a date folder.
func (s *SpacesService) ObjectKey(name string, at time.Time) string {
	return path.Join(s.prefix, at.UTC().Format("2006/01/02"), name)
}

// Upload stores a public PNG and returns its URL.
func (s *SpacesService) Upload(ctx context.Context, name string, image []byte) (string, error) {
	key := s.ObjectKey(name, time.Now())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String("image/png"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *SpacesService) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}
