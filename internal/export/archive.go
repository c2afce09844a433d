package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/saulo-duarte/enade-questoes/internal/config"
)

var ErrArchiveDisabled = errors.New("object storage is not configured")

const DefaultLinkExpiry = 24 * time.Hour

// Archiver stores rendered questions in an S3 compatible bucket and hands out
// presigned download links.
type Archiver struct {
	client *minio.Client
	bucket string
	region string
	expiry time.Duration
}

func NewArchiver(s config.StorageSettings) (*Archiver, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}

	client, err := minio.New(s.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.AccessKey, s.SecretKey, ""),
		Secure: s.UseSSL,
		Region: s.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Archiver{client: client, bucket: s.Bucket, region: s.Region, expiry: DefaultLinkExpiry}, nil
}

func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region})
}

// ObjectKey groups every rendition of a question under its id.
func ObjectKey(q *aiquiz.GeneratedQuestion, f Format) string {
	return fmt.Sprintf("questoes/%s/%s", q.ID, FileName(q.Curso, f))
}

func (a *Archiver) Upload(ctx context.Context, q *aiquiz.GeneratedQuestion, f Format) (string, error) {
	log := config.WithContext(ctx)

	data, err := Render(q, f)
	if err != nil {
		return "", err
	}

	key := ObjectKey(q, f)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: f.ContentType(),
	})
	if err != nil {
		log.WithError(err).Errorf("[EXPORT] Falha ao enviar %s para o bucket %s", key, a.bucket)
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	link, err := a.PresignedURL(ctx, key, FileName(q.Curso, f))
	if err != nil {
		return "", err
	}

	log.WithField("object", key).Info("[EXPORT] Questão arquivada")
	return link, nil
}

func (a *Archiver) PresignedURL(ctx context.Context, key, downloadName string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))

	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, a.expiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return u.String(), nil
}
