package domain

// StoreEntry Model
type StoreEntry struct {
	Scope     string `gorm:"primaryKey;size:64"`                    // Browser scope the key belongs to
	Key       string `gorm:"column:storage_key;primaryKey;size:64"` // Storage key: email, password, isLoggedIn, cart
	Value     string `gorm:"type:text;not null"`                    // Raw string value
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`                  // Timestamp of last write in milliseconds
}
