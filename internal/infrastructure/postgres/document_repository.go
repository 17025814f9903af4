package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador de persistencia.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

const documentColumns = `id, business_profile_id, section_name, doc_type, file_url, expiry_date, uploaded_at`

// Create persiste los metadatos de un documento subido.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.OnboardingDocument) error {
	query := `
		INSERT INTO onboarding_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var section *string
	if doc.SectionName != nil {
		s := string(*doc.SectionName)
		section = &s
	}
	_, err := r.pool.Exec(ctx, query,
		doc.ID, doc.BusinessProfileID, section, string(doc.DocType),
		doc.FileURL, doc.ExpiryDate, doc.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID, o nil si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.OnboardingDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM onboarding_documents WHERE id = $1`
	doc, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListByProfile devuelve todos los documentos del perfil.
func (r *DocumentRepo) ListByProfile(ctx context.Context, profileID string) ([]*entity.OnboardingDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM onboarding_documents WHERE business_profile_id = $1`
	return r.list(ctx, query, profileID)
}

// ListBySection devuelve los documentos del perfil etiquetados con la sección.
func (r *DocumentRepo) ListBySection(ctx context.Context, profileID string, section entity.Section) ([]*entity.OnboardingDocument, error) {
	query := `SELECT ` + documentColumns + `
		FROM onboarding_documents
		WHERE business_profile_id = $1 AND section_name = $2`
	return r.list(ctx, query, profileID, string(section))
}

// ListUntagged devuelve los documentos del perfil sin sección asignada.
func (r *DocumentRepo) ListUntagged(ctx context.Context, profileID string) ([]*entity.OnboardingDocument, error) {
	query := `SELECT ` + documentColumns + `
		FROM onboarding_documents
		WHERE business_profile_id = $1 AND section_name IS NULL`
	return r.list(ctx, query, profileID)
}

// Delete elimina el registro de metadatos. No toca los bytes del file store.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM onboarding_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.OnboardingDocument, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.OnboardingDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.OnboardingDocument, error) {
	var doc entity.OnboardingDocument
	var section *string
	var docType string
	if err := row.Scan(
		&doc.ID, &doc.BusinessProfileID, &section, &docType,
		&doc.FileURL, &doc.ExpiryDate, &doc.UploadedAt,
	); err != nil {
		return nil, err
	}
	if section != nil {
		s := entity.Section(*section)
		doc.SectionName = &s
	}
	doc.DocType = entity.DocumentType(docType)
	return &doc, nil
}
