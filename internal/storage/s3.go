package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marke1-web/hw05-final/internal/config"
)

var s3Client *s3.Client
var s3Bucket string
var s3Region string

func Init(cfg *config.Config) error {
	s3Bucket = cfg.AWSBucket
	s3Region = cfg.AWSRegion

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(s3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	s3Client = s3.NewFromConfig(awsCfg)
	return nil
}

func UploadToS3(file multipart.File, filename string, contentType string, folder string) (string, error) {
	key := fmt.Sprintf("%s/%s", folder, filename)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s3Bucket, s3Region, key)
	return publicURL, nil
}

func DeleteFromS3(key string) error {
	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("S3 delete failed: %w", err)
	}
	return nil
}

// KeyFromURL extracts the object key from a public S3 URL. Returns ""
// when the URL does not point at our bucket.
func KeyFromURL(publicURL string) string {
	parts := strings.Split(publicURL, ".amazonaws.com/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
