package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
)

var _ onboarding.FileStore = (*FileStore)(nil)

// FileStore guarda los bytes en un mapa. Para tests del flujo de subida.
type FileStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailNext fuerza un error en el próximo Put. Permite probar el
	// escenario de subida fallida sin metadata escrita.
	FailNext error
}

func NewFileStore() *FileStore {
	return &FileStore{objects: make(map[string][]byte)}
}

func (s *FileStore) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNext != nil {
		err := s.FailNext
		s.FailNext = nil
		return "", err
	}
	cp := append([]byte(nil), data...)
	s.objects[name] = cp
	return "mem://" + name, nil
}

// Object devuelve los bytes almacenados bajo name, si existen.
func (s *FileStore) Object(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[name]
	return data, ok
}

// Len cantidad de objetos almacenados.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
