package model

import "time"

// AssetType classifies a manually tracked asset.
type AssetType string

const (
	// AssetGold is physical gold.
	AssetGold AssetType = "gold"
	// AssetRealEstate is property.
	AssetRealEstate AssetType = "real_estate"
	// AssetStock is equities.
	AssetStock AssetType = "stock"
	// AssetCrypto is cryptocurrency.
	AssetCrypto AssetType = "crypto"
	// AssetSaving is a savings deposit.
	AssetSaving AssetType = "saving"
	// AssetCash is cash on hand.
	AssetCash AssetType = "cash"
	// AssetOther is anything else.
	AssetOther AssetType = "other"
)

// Valid reports whether t is a known asset type.
func (t AssetType) Valid() bool {
	switch t {
	case AssetGold, AssetRealEstate, AssetStock, AssetCrypto, AssetSaving, AssetCash, AssetOther:
		return true
	}
	return false
}

// Asset is a manually entered net-worth snapshot, independent of the
// transaction log.
type Asset struct {
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Type      AssetType `json:"type"`
	Value     float64   `json:"value"`
}

// Budget caps spending for one category. There is at most one budget per
// category; the spent amount is always derived from the current month's
// transactions, never stored here.
type Budget struct {
	CategoryID string  `json:"categoryId"`
	Limit      float64 `json:"limit"`
}
