package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/finanza-app/finanza-backend/internal/core/ports/repositories"
)

// PreferenceRepository is the sqlite implementation of
// portsrepo.PreferenceRepository.
type PreferenceRepository struct {
	db *sql.DB
}

var _ portsrepo.PreferenceRepository = (*PreferenceRepository)(nil)

func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT pref_key, pref_value FROM preferences WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preferences: %w", err)
	}
	return prefs, nil
}

func (r *PreferenceRepository) SetPreference(ctx context.Context, userID, key, value string) error {
	query := `INSERT INTO preferences (user_id, pref_key, pref_value) VALUES (?, ?, ?)
		ON CONFLICT (user_id, pref_key) DO UPDATE SET pref_value = excluded.pref_value`
	_, err := r.db.ExecContext(ctx, query, userID, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}
