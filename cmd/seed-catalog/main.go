// seed-catalog genera el script SQL que puebla la tabla mandatory_documents
// a partir del catálogo estático en internal/domain/catalog.
//
// Uso: go run ./cmd/seed-catalog [ruta/salida.sql]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_mandatory_documents.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tu-usuario/farm-onboarding/internal/domain/catalog"
)

func main() {
	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_mandatory_documents.sql")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed-catalog. No editar a mano.\n\n")
	for _, rule := range catalog.DefaultRules {
		notes := "NULL"
		if rule.Notes != nil {
			notes = quote(*rule.Notes)
		}
		fmt.Fprintf(&b,
			"INSERT INTO mandatory_documents (section_name, doc_type, mandatory, notes)\n"+
				"VALUES (%s, %s, %t, %s)\n"+
				"ON CONFLICT (section_name, doc_type) DO UPDATE SET mandatory = EXCLUDED.mandatory, notes = EXCLUDED.notes;\n\n",
			quote(string(rule.SectionName)), quote(string(rule.DocType)), rule.Mandatory, notes,
		)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%d reglas)\n", outPath, len(catalog.DefaultRules))
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
