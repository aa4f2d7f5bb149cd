package favorite

import (
	"context"

	"farefinder/pkg/db"
)

// Record is one stored favorite row: the storage id plus the serialized
// flight offer blob.
type Record struct {
	ID         int64
	FlightData string
}

type Repository struct {
	db db.SQLExecutor
}

func NewRepository(executor db.SQLExecutor) *Repository {
	return &Repository{db: executor}
}

func (r *Repository) Insert(ctx context.Context, id, userID int64, flightData string) error {
	query := "INSERT INTO favorites (id, user_id, flight_data) VALUES ($1, $2, $3)"
	_, err := r.db.ExecContext(ctx, query, id, userID, flightData)
	return err
}

// Delete removes the favorite keyed by (id, user_id) and reports how many
// rows were affected. A mismatched pair deletes nothing.
func (r *Repository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	query := "DELETE FROM favorites WHERE id = $1 AND user_id = $2"
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Record, error) {
	query := "SELECT id, flight_data FROM favorites WHERE user_id = $1"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.FlightData); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
