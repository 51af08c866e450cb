package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/costmanager/costmanager-server/internal/model"
)

var _ model.CostStore = (*CostRepository)(nil)

type CostRepository struct {
	db *Connection
}

func NewCostRepository(db *Connection) *CostRepository {
	return &CostRepository{
		db: db,
	}
}

func (r *CostRepository) Create(ctx context.Context, cost model.Cost) (model.Cost, error) {
	query := `INSERT INTO costs (id, user_id, description, category, amount, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, user_id, description, category, amount, created_at`

	var saved model.Cost
	err := r.db.QueryRowContext(ctx, query,
		cost.ID, cost.UserID, cost.Description, string(cost.Category), cost.Sum, cost.CreatedAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Description, &saved.Category, &saved.Sum, &saved.CreatedAt,
	)
	if err != nil {
		return model.Cost{}, fmt.Errorf("failed to create cost: %w", err)
	}

	return saved, nil
}

// GetByUserIDBetween returns the user's costs with from <= created_at < to,
// oldest first.
func (r *CostRepository) GetByUserIDBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Cost, error) {
	query := `
		SELECT c.id, c.user_id, c.description, c.category, c.amount, c.created_at
		FROM costs c
		WHERE c.user_id = $1 AND c.created_at >= $2 AND c.created_at < $3
		ORDER BY c.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}
	defer rows.Close()

	var costs []model.Cost
	for rows.Next() {
		var cost model.Cost
		err := rows.Scan(
			&cost.ID, &cost.UserID, &cost.Description, &cost.Category, &cost.Sum, &cost.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost: %w", err)
		}
		costs = append(costs, cost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate costs: %w", err)
	}

	return costs, nil
}

func (r *CostRepository) SumByUserID(ctx context.Context, userID string) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM costs WHERE user_id = $1`

	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum costs: %w", err)
	}

	return total, nil
}
