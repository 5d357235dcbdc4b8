package models

// AccountModel is the GORM model for accounts.
type AccountModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	SID       string `gorm:"column:sid;type:varchar(255);uniqueIndex:uidx_accounts_sid;not null"`
	Name      string `gorm:"type:varchar(255);not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

// APIKeyModel is the GORM model for account API keys. Only the bcrypt hash
// of the secret is stored.
type APIKeyModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	AccountID uint   `gorm:"index:idx_api_keys_account_id;not null"`
	KeyHash   string `gorm:"type:varchar(255);not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

func (APIKeyModel) TableName() string {
	return "api_keys"
}
