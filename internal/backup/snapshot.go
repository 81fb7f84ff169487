// Package backup encodes and decodes the JSON snapshot exchanged at the
// system boundary for backup and restore.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
)

// Version is the snapshot format version written by Encode.
const Version = "2.0"

// Snapshot is the full backup shape. Collection fields are pointers so a
// restore can distinguish "absent, leave untouched" from "present but empty,
// clear the collection".
type Snapshot struct {
	Timestamp    time.Time                      `json:"timestamp"`
	Transactions *[]model.Transaction           `json:"transactions,omitempty"`
	Categories   *model.AllCategories           `json:"categories,omitempty"`
	Goals        *[]model.SavingsGoal           `json:"goals,omitempty"`
	Recurring    *[]model.RecurringTransaction  `json:"recurring,omitempty"`
	Budgets      *[]model.Budget                `json:"budgets,omitempty"`
	Assets       *[]model.Asset                 `json:"assets,omitempty"`
	Version      string                         `json:"version"`
}

// Collections lists the collection keys present in the snapshot, in the
// order a restore applies them.
func (s *Snapshot) Collections() []string {
	var keys []string
	if s.Transactions != nil {
		keys = append(keys, "transactions")
	}
	if s.Categories != nil {
		keys = append(keys, "categories")
	}
	if s.Goals != nil {
		keys = append(keys, "goals")
	}
	if s.Recurring != nil {
		keys = append(keys, "recurring")
	}
	if s.Budgets != nil {
		keys = append(keys, "budgets")
	}
	if s.Assets != nil {
		keys = append(keys, "assets")
	}
	return keys
}

// Encode serializes a snapshot with the current format version and timestamp.
func Encode(snap Snapshot) ([]byte, error) {
	snap.Version = Version
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses either the full snapshot object or the legacy bare array of
// transactions, which is interpreted as "transactions only, nothing else
// changes". Anything else is rejected with ErrMalformedSnapshot and no
// partial result.
func Decode(data []byte) (*Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", common.ErrMalformedSnapshot)
	}

	switch trimmed[0] {
	case '[':
		var txns []model.Transaction
		if err := json.Unmarshal(trimmed, &txns); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
		}
		return &Snapshot{Transactions: &txns}, nil
	case '{':
		var snap Snapshot
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
		}
		return &snap, nil
	default:
		return nil, fmt.Errorf("%w: input is neither object nor array", common.ErrMalformedSnapshot)
	}
}
