// Package s3 emite URLs pré-assinadas para upload direto ao bucket.
package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/infrastructure/config"
)

// Presigner implementa ports.ObjectStorage
type Presigner struct {
	client *awss3.PresignClient
	bucket string
	expiry time.Duration
}

// NewPresigner cria o cliente S3 a partir da configuração. Credenciais
// estáticas são usadas quando informadas; caso contrário, a cadeia padrão da AWS.
func NewPresigner(ctx context.Context, cfg config.StorageConfig) (*Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Presigner{
		client: awss3.NewPresignClient(client),
		bucket: cfg.Bucket,
		expiry: cfg.PresignExpiry,
	}, nil
}

var _ ports.ObjectStorage = (*Presigner)(nil)

func (p *Presigner) PresignUpload(ctx context.Context, key, contentType string) (*ports.PresignedUpload, error) {
	req, err := p.client.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *awss3.PresignOptions) {
		opts.Expires = p.expiry
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	headers := make(map[string]string, len(req.SignedHeader))
	for name, values := range req.SignedHeader {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	return &ports.PresignedUpload{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		Headers:   headers,
		ExpiresAt: time.Now().Add(p.expiry),
	}, nil
}
