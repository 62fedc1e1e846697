// Package entries provides the PostgreSQL-backed entry repository.
// Activity tags are stored as a JSON-encoded text column so the row shape
// stays portable.
package entries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"herbtrack/internal/dbx"
	"herbtrack/internal/server/models"
	"herbtrack/internal/shared"
)

// PostgresRepository implements entry storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, entry *models.Entry) error {
	activities, err := json.Marshal(entry.Activities)
	if err != nil {
		return fmt.Errorf("activities encoding error: %w", err)
	}

	query := `
		INSERT INTO entries
			(user_id, thc_mg, ts, date, time, method, amount, puffs, thc_percent,
			 strain, mood, energy, focus, creativity, anxiety, activities, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at;
	`
	err = r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.THCMg, entry.Timestamp, entry.Date, entry.Time,
		entry.Method, entry.Amount, entry.Puffs, entry.THCPercent, entry.Strain,
		entry.Mood, entry.Energy, entry.Focus, entry.Creativity, entry.Anxiety,
		string(activities), entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const selectColumns = `id, user_id, thc_mg, ts, date, time, method, amount, puffs,
	thc_percent, strain, mood, energy, focus, creativity, anxiety, activities, notes, created_at`

func (r *PostgresRepository) SelectByUser(ctx context.Context, userID int64) ([]*models.Entry, error) {
	query := `SELECT ` + selectColumns + ` FROM entries WHERE user_id = $1 ORDER BY ts DESC`
	return r.selectMany(ctx, query, userID)
}

func (r *PostgresRepository) SelectSince(ctx context.Context, userID int64, since time.Time) ([]*models.Entry, error) {
	query := `SELECT ` + selectColumns + ` FROM entries WHERE user_id = $1 AND ts >= $2 ORDER BY ts DESC`
	return r.selectMany(ctx, query, userID, since)
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		var (
			item       models.Entry
			activities string
		)
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.THCMg, &item.Timestamp, &item.Date, &item.Time,
			&item.Method, &item.Amount, &item.Puffs, &item.THCPercent, &item.Strain,
			&item.Mood, &item.Energy, &item.Focus, &item.Creativity, &item.Anxiety,
			&activities, &item.Notes, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(activities), &item.Activities); err != nil {
			return nil, fmt.Errorf("activities decoding error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM entries WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return shared.ErrorEntryDoesNotExist
	}
	return nil
}
