package db_models

import "gorm.io/datatypes"

// Identity is the account record behind the identity provider. Profiles
// reference it by user_id but the two are separate aggregates: deleting a
// profile never touches the identity.
type Identity struct {
	BaseModel
	Email         string `gorm:"uniqueIndex"`
	PasswordHash  string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool           `gorm:"default:false"`
	Disabled      bool           `gorm:"default:false"`
	Claims        datatypes.JSON `gorm:"default:'{}'"`
}
