package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// GetRecurring returns every recurring transaction template.
func (s *SQLiteStore) GetRecurring(ctx context.Context) ([]model.RecurringTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, amount, category_id, type, frequency, start_date, next_due_date, wallet_id, note
		FROM recurring`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recs := []model.RecurringTransaction{}
	for rows.Next() {
		var rec model.RecurringTransaction
		var startDate, nextDue string
		var wallet, note sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Amount, &rec.CategoryID, &rec.Type, &rec.Frequency,
			&startDate, &nextDue, &wallet, &note); err != nil {
			return nil, fmt.Errorf("failed to scan recurring transaction: %w", err)
		}
		if rec.StartDate, err = model.ParseDate(startDate); err != nil {
			return nil, fmt.Errorf("recurring %s: %w", rec.ID, err)
		}
		if rec.NextDueDate, err = model.ParseDate(nextDue); err != nil {
			return nil, fmt.Errorf("recurring %s: %w", rec.ID, err)
		}
		rec.WalletID = wallet.String
		rec.Note = note.String
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring transactions: %w", err)
	}

	return recs, nil
}

// ReplaceRecurring atomically swaps the recurring collection.
func (s *SQLiteStore) ReplaceRecurring(ctx context.Context, recs []model.RecurringTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecurring(recs); err != nil {
		return err
	}

	return s.replaceAll(ctx, "recurring", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO recurring (id, amount, category_id, type, frequency, start_date, next_due_date, wallet_id, note)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, rec := range recs {
			if _, err := stmt.ExecContext(ctx,
				rec.ID, rec.Amount, rec.CategoryID, string(rec.Type), string(rec.Frequency),
				rec.StartDate.String(), rec.NextDueDate.String(), rec.WalletID, rec.Note,
			); err != nil {
				return fmt.Errorf("failed to insert recurring %s: %w", rec.ID, err)
			}
		}
		return nil
	})
}

// GetGoals returns every savings goal.
func (s *SQLiteStore) GetGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, target_amount, current_amount, icon, color, deadline, status
		FROM goals`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := []model.SavingsGoal{}
	for rows.Next() {
		var goal model.SavingsGoal
		var icon, color, deadline sql.NullString
		if err := rows.Scan(&goal.ID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount,
			&icon, &color, &deadline, &goal.Status); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goal.Icon = icon.String
		goal.Color = color.String
		if deadline.Valid && deadline.String != "" {
			d, parseErr := model.ParseDate(deadline.String)
			if parseErr != nil {
				return nil, fmt.Errorf("goal %s: %w", goal.ID, parseErr)
			}
			goal.Deadline = &d
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// ReplaceGoals atomically swaps the goals collection.
func (s *SQLiteStore) ReplaceGoals(ctx context.Context, goals []model.SavingsGoal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoals(goals); err != nil {
		return err
	}

	return s.replaceAll(ctx, "goals", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO goals (id, name, target_amount, current_amount, icon, color, deadline, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, goal := range goals {
			deadline := ""
			if goal.Deadline != nil {
				deadline = goal.Deadline.String()
			}
			if _, err := stmt.ExecContext(ctx,
				goal.ID, goal.Name, goal.TargetAmount, goal.CurrentAmount,
				goal.Icon, goal.Color, deadline, string(goal.Status),
			); err != nil {
				return fmt.Errorf("failed to insert goal %s: %w", goal.ID, err)
			}
		}
		return nil
	})
}

// GetBudgets returns every budget, keyed by category id.
func (s *SQLiteStore) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT category_id, limit_amount FROM budgets`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := []model.Budget{}
	for rows.Next() {
		var budget model.Budget
		if err := rows.Scan(&budget.CategoryID, &budget.Limit); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// ReplaceBudgets atomically swaps the budget collection.
func (s *SQLiteStore) ReplaceBudgets(ctx context.Context, budgets []model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudgets(budgets); err != nil {
		return err
	}

	return s.replaceAll(ctx, "budgets", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO budgets (category_id, limit_amount) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, budget := range budgets {
			if _, err := stmt.ExecContext(ctx, budget.CategoryID, budget.Limit); err != nil {
				return fmt.Errorf("failed to insert budget %s: %w", budget.CategoryID, err)
			}
		}
		return nil
	})
}

// GetAssets returns every asset.
func (s *SQLiteStore) GetAssets(ctx context.Context) ([]model.Asset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, value, type, note, updated_at FROM assets`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	assets := []model.Asset{}
	for rows.Next() {
		var asset model.Asset
		var note sql.NullString
		if err := rows.Scan(&asset.ID, &asset.Name, &asset.Value, &asset.Type, &note, &asset.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		asset.Note = note.String
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	slog.Debug("retrieved assets", "count", len(assets))
	return assets, nil
}

// ReplaceAssets atomically swaps the asset collection.
func (s *SQLiteStore) ReplaceAssets(ctx context.Context, assets []model.Asset) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAssets(assets); err != nil {
		return err
	}

	return s.replaceAll(ctx, "assets", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO assets (id, name, value, type, note, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, asset := range assets {
			if _, err := stmt.ExecContext(ctx,
				asset.ID, asset.Name, asset.Value, string(asset.Type), asset.Note, asset.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert asset %s: %w", asset.ID, err)
			}
		}
		return nil
	})
}
