// Package validation проверяет пользовательский ввод на клиенте и сервере.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 10
)

// usernamePattern латиница, цифры, '_', '-' и '.', первая буква или цифра
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidateUsername проверяет формат username
func ValidateUsername(username string) error {
	switch n := len(username); {
	case n == 0:
		return fmt.Errorf("%w: cannot be empty", ErrInvalidUsername)
	case n < MinUsernameLen:
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidUsername, MinUsernameLen)
	case n > MaxUsernameLen:
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidUsername, MaxUsernameLen)
	}

	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: only letters, digits, '_', '-' and '.' are allowed", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword проверяет длину пароля в символах, не в байтах
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidPassword)
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidPassword, MinPasswordLen)
	}
	return nil
}
