package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"scanner-srv/internal/model"
	"scanner-srv/internal/settings/repository"
)

// GetByUserID returns the settings row for a user.
func (r *implRepository) GetByUserID(ctx context.Context, userID string) (model.Setting, error) {
	query := `
		SELECT id, user_id, facebook_access_token, ai_prompt_template, created_at, updated_at
		FROM scanner.settings
		WHERE user_id = $1
	`

	var (
		s        model.Setting
		token    sql.NullString
		template sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &token, &template, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Setting{}, repository.ErrNotFound
		}
		return model.Setting{}, fmt.Errorf("GetByUserID: %w", err)
	}

	s.FacebookAccessToken = token.String
	s.AIPromptTemplate = template.String

	return s, nil
}
