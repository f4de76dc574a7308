package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch хеш не соответствует переданному значению
var ErrMismatch = errors.New("credentials do not match")

// HashAuthKey хеширует auth_key через SHA256, результат в hex.
// Это значение клиент отправляет серверу как auth_key_hash.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}
	hash := sha256.Sum256(authKey)
	return hex.EncodeToString(hash[:]), nil
}

// HashPassword хеширует auth_key_hash клиента для хранения на сервере (bcrypt)
func HashPassword(authKeyHash string) (string, error) {
	if authKeyHash == "" {
		return "", fmt.Errorf("auth key hash cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(authKeyHash), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash auth key: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword сравнивает auth_key_hash с сохраненным bcrypt хешем
func CheckPassword(authKeyHash, stored string) error {
	if authKeyHash == "" || stored == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(authKeyHash))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to compare hash: %w", err)
	}
	return nil
}
