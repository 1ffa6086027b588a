// Package objectstore implementa el almacenamiento de imágenes sobre MinIO
// (compatible S3). Las imágenes se guardan como <carpeta>/<uuid><ext> y la URL
// pública devuelta es la que se persiste en las entidades.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tu-usuario/techreview-api/internal/application/ports"
	"github.com/tu-usuario/techreview-api/pkg/config"
)

var _ ports.ImageStore = (*MinioStore)(nil)

// MinioStore implementa ports.ImageStore sobre un bucket MinIO/S3.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	useSSL    bool
	endpoint  string
}

// NewMinioStore conecta al endpoint y asegura que el bucket exista.
func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("conectar a object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		useSSL:    cfg.UseSSL,
		endpoint:  cfg.Endpoint,
	}, nil
}

// Upload sube la imagen bajo la carpeta indicada y devuelve su URL pública.
// El content type se detecta del contenido, no de la extensión.
func (s *MinioStore) Upload(ctx context.Context, data []byte, folder, originalFilename string) (string, error) {
	ext := strings.ToLower(path.Ext(originalFilename))
	objectName := folder + "/" + uuid.New().String() + ext
	contentType := http.DetectContentType(data)

	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("subir imagen: %w", err)
	}
	return s.objectURL(objectName), nil
}

// objectURL arma la URL pública del objeto. Si hay PUBLIC_URL configurada
// (CDN o proxy) se usa esa base; si no, el endpoint directo.
func (s *MinioStore) objectURL(objectName string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + s.bucket + "/" + objectName
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}
