package model

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
	Email     string `gorm:"column:email;unique;not null"`
	Password  string `gorm:"column:password;not null"`
	PhoneNo   string `gorm:"column:phone_no;not null"`

	// passwordChanged tracks whether Password currently holds a plaintext
	// value that still needs hashing. Unexported, so gorm never persists it.
	passwordChanged bool
}

// SetPassword assigns a plaintext password and flags it for hashing. The
// flag is only raised when the value actually changes, so re-saving an
// unchanged (already hashed) password never triggers a re-hash.
func (u *User) SetPassword(plaintext string) {
	if plaintext == u.Password {
		return
	}
	u.Password = plaintext
	u.passwordChanged = true
}

// PasswordChanged reports whether Password holds an unhashed value.
func (u *User) PasswordChanged() bool {
	return u.passwordChanged
}

// MarkPasswordHashed clears the pending-hash flag after the credential store
// replaced the plaintext with its hash.
func (u *User) MarkPasswordHashed() {
	u.passwordChanged = false
}
