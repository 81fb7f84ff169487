package model

import "time"

// AdviceRecord is one cached advisor response. Cached records are keyed by a
// hash of the question plus the snapshot it was asked against.
type AdviceRecord struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
}
