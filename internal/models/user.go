package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt   time.Time  `json:"created_at"`    // время создания
	LastLogin   *time.Time `json:"last_login"`    // время последнего входа
	ID          string     `json:"id"`            // UUID пользователя
	Username    string     `json:"username"`      // уникальный username
	AuthKeyHash string     `json:"auth_key_hash"` // bcrypt хеш auth_key_hash клиента
	PublicSalt  string     `json:"public_salt"`   // base64 encoded salt (32 bytes)
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	Token     string    `json:"token"`      // значение токена
	UserID    string    `json:"user_id"`    // ID пользователя
}
