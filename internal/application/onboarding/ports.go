// Package onboarding implementa el motor de progreso y requisitos del
// onboarding: guardado de secciones, tracker de avance, registro de
// documentos y acuerdos, evaluación de requisitos y la vista de estado
// consolidada.
package onboarding

import "context"

// FileStore puerto del almacén de objetos binarios. Put guarda los bytes bajo
// name y devuelve la dirección pública recuperable. Este núcleo nunca invoca
// borrados sobre el file store.
type FileStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
