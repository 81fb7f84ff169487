package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
)

// GetMeta reads a JSON metadata value into out. It returns false with no
// error when the key has never been written.
func (s *SQLiteStore) GetMeta(ctx context.Context, key string, out any) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(key, "key"); err != nil {
		return false, err
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query metadata %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode metadata %q: %w", key, err)
	}
	return true, nil
}

// SetMeta upserts a JSON metadata value under key.
func (s *SQLiteStore) SetMeta(ctx context.Context, key string, value any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode metadata %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("%w: metadata %q: %v", common.ErrStoreWriteFailed, key, err)
	}
	return nil
}

// GetAdvice returns a cached advisor response, or nil when the id is unknown.
func (s *SQLiteStore) GetAdvice(ctx context.Context, id string) (*model.AdviceRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var rec model.AdviceRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, answer, created_at FROM advice_cache WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Question, &rec.Answer, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query advice cache: %w", err)
	}
	return &rec, nil
}

// PutAdvice upserts a single cached response. The cache is append-like, so a
// whole-collection replace would be wasteful and wrong here.
func (s *SQLiteStore) PutAdvice(ctx context.Context, rec *model.AdviceRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: advice record", ErrNilParameter)
	}
	if err := validateString(rec.ID, "advice ID"); err != nil {
		return err
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO advice_cache (id, question, answer, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET question = excluded.question,
			answer = excluded.answer, created_at = excluded.created_at
	`, rec.ID, rec.Question, rec.Answer, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: advice cache: %v", common.ErrStoreWriteFailed, err)
	}
	return nil
}
