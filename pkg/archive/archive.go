package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	appConfig "riftwind/pkg/config"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Archiver stores raw Riot payload bundles in a S3 bucket so a request can
// be replayed later without refetching.
type Archiver struct {
	client *s3.Client
	bucket string
}

// Bundle is one request's worth of raw API responses.
type Bundle struct {
	Timestamp string         `json:"timestamp"`
	RiotId    string         `json:"riot_id"`
	Region    string         `json:"region"`
	Responses map[string]any `json:"api_responses"`
}

// NewArchiver builds the S3 client from the bucket configuration.
// Returns nil when no bucket is configured, which disables archiving.
func NewArchiver() *Archiver {
	if appConfig.Bucket.ArchiveBucket == "" {
		return nil
	}

	cfg := aws.Config{
		Region: appConfig.Bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Bucket.AccessKey,
				appConfig.Bucket.AccessSecret,
				"",
			),
		),
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if appConfig.Bucket.Endpoint != "" {
			o.BaseEndpoint = aws.String(appConfig.Bucket.Endpoint)
		}
	})

	return &Archiver{
		client: client,
		bucket: appConfig.Bucket.ArchiveBucket,
	}
}

// Save uploads one payload bundle keyed by riot id, region and timestamp.
func (a *Archiver) Save(ctx context.Context, gameName, tagLine, region string, responses map[string]any) error {
	if a == nil {
		return nil
	}

	now := time.Now().UTC()
	bundle := Bundle{
		Timestamp: now.Format(time.RFC3339),
		RiotId:    gameName + "#" + tagLine,
		Region:    region,
		Responses: responses,
	}

	body, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal payload bundle: %v", err)
	}

	objectKey := fmt.Sprintf("%s_%s_%s_%s.json", gameName, tagLine, region, now.Format("20060102_150405"))

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(body),
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	return nil
}
