package models

import "golang.org/x/crypto/bcrypt"

// Seller — sellers table. Created only through registration; no endpoint
// updates or deletes sellers.
//
// PasswordHash is serialized on purpose: the registration endpoint has
// always answered with the full row, hash included, and clients depend on
// the shape. Display forms (display.go) never include it.
type Seller struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash" gorm:"not null"`
}

// HashPassword turns a plaintext password into a salted bcrypt hash.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
