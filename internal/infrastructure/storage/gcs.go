// Package storage implementa los file stores concretos para los documentos
// de onboarding: Google Cloud Storage en producción y disco local en dev.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
)

var _ onboarding.FileStore = (*GCSStore)(nil)

// GCSStore sube documentos a un bucket de Google Cloud Storage.
type GCSStore struct {
	client *storage.Client
	bucket string
	// baseURL opcional; si está vacío se usa la URL pública estándar del bucket.
	baseURL string
}

// NewGCSStore crea el cliente de GCS. Si credentialsPath está vacío se usan
// las credenciales por defecto del entorno (ADC).
func NewGCSStore(ctx context.Context, bucket, credentialsPath, baseURL string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear cliente GCS: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, baseURL: baseURL}, nil
}

// Put escribe los bytes como objeto del bucket y devuelve la URL resultante.
func (s *GCSStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "no-cache, no-store, must-revalidate"

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("escribir objeto %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("cerrar writer de %s: %w", name, err)
	}

	if s.baseURL != "" {
		return s.baseURL + "/" + name, nil
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name), nil
}

// Close libera el cliente subyacente.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
