package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
)

var _ onboarding.FileStore = (*LocalStore)(nil)

// LocalStore guarda los documentos en disco, bajo un directorio raíz.
// Pensado para desarrollo local; en producción se usa GCSStore.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de almacenamiento %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio para %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir archivo %s: %w", name, err)
	}
	return s.baseURL + "/" + name, nil
}
