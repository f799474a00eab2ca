package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SimpleUserModel is the lightweight "name + PIN" identity. The PIN hash is
// salted with the public name only — a low-stakes study-group identity, not
// real authentication. Two users may share a name as long as their PINs
// differ; login matches on the (name, pin) pair.
type SimpleUserModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:50;not null;uniqueIndex:idx_simple_users_name_pin" json:"name"`
	PinHash   string    `gorm:"column:pin_hash;size:64;not null;uniqueIndex:idx_simple_users_name_pin" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastLogin time.Time `gorm:"column:last_login" json:"last_login"`
}

func (SimpleUserModel) TableName() string {
	return "simple_users"
}

func HashPIN(name, pin string) string {
	sum := sha256.Sum256([]byte(name + pin))
	return hex.EncodeToString(sum[:])
}

func (u *SimpleUserModel) SetPIN(pin string) {
	u.PinHash = HashPIN(u.Name, pin)
}

func (u *SimpleUserModel) CheckPIN(pin string) bool {
	return u.PinHash == HashPIN(u.Name, pin)
}
