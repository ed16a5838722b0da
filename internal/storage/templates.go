package storage

import (
	"context"

	"github.com/fisioagenda/fisioagenda/internal/model"
	"github.com/fisioagenda/fisioagenda/libs/db"
)

type TemplateRepository struct {
	pool *db.Pool
}

func NewTemplateRepository(pool *db.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

// ListMessageTemplates returns the active templates, default-flagged first so
// callers can pick the head of the list.
func (r *TemplateRepository) ListMessageTemplates(ctx context.Context) ([]model.MessageTemplate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, body, is_default
		FROM message_templates
		ORDER BY is_default DESC, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []model.MessageTemplate
	for rows.Next() {
		var tpl model.MessageTemplate
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Body, &tpl.IsDefault); err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return templates, nil
}
