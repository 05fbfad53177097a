package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrDuplicateName    = errors.New("template name already exists")
)

// TemplateRepository handles saved-template persistence operations.
type TemplateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = `id, name, length, numbers, lowercase, uppercase,
	begin_with_letter, exclude_similar, no_duplicates, remove_sequential,
	custom_symbols, created_at, updated_at`

// Create inserts a new template and fills in its generated ID.
func (r *TemplateRepository) Create(ctx context.Context, tpl *model.Template) error {
	query := `INSERT INTO templates
		(name, length, numbers, lowercase, uppercase, begin_with_letter,
		exclude_similar, no_duplicates, remove_sequential, custom_symbols)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		tpl.Name, tpl.Length, tpl.Numbers, tpl.Lowercase, tpl.Uppercase,
		tpl.BeginWithLetter, tpl.ExcludeSimilar, tpl.NoDuplicates,
		tpl.RemoveSequential, tpl.CustomSymbols,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateName
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	tpl.ID = id
	return nil
}

// GetByID retrieves a template by its ID.
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*model.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = ?`

	tpl := &model.Template{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tpl.ID, &tpl.Name, &tpl.Length, &tpl.Numbers, &tpl.Lowercase,
		&tpl.Uppercase, &tpl.BeginWithLetter, &tpl.ExcludeSimilar,
		&tpl.NoDuplicates, &tpl.RemoveSequential, &tpl.CustomSymbols,
		&tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	return tpl, nil
}

// List retrieves all templates, most recently updated first.
func (r *TemplateRepository) List(ctx context.Context) ([]model.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		var tpl model.Template
		if err := rows.Scan(
			&tpl.ID, &tpl.Name, &tpl.Length, &tpl.Numbers, &tpl.Lowercase,
			&tpl.Uppercase, &tpl.BeginWithLetter, &tpl.ExcludeSimilar,
			&tpl.NoDuplicates, &tpl.RemoveSequential, &tpl.CustomSymbols,
			&tpl.CreatedAt, &tpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	return templates, rows.Err()
}

// Update replaces a template's configuration by ID.
func (r *TemplateRepository) Update(ctx context.Context, tpl *model.Template) error {
	query := `UPDATE templates SET
		name = ?, length = ?, numbers = ?, lowercase = ?, uppercase = ?,
		begin_with_letter = ?, exclude_similar = ?, no_duplicates = ?,
		remove_sequential = ?, custom_symbols = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		tpl.Name, tpl.Length, tpl.Numbers, tpl.Lowercase, tpl.Uppercase,
		tpl.BeginWithLetter, tpl.ExcludeSimilar, tpl.NoDuplicates,
		tpl.RemoveSequential, tpl.CustomSymbols, tpl.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateName
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// Delete removes a template by ID.
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
