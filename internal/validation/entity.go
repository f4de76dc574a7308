package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/iudanet/mdkeeper/internal/models"
)

var (
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidColor   = errors.New("invalid color")
	ErrInvalidType    = errors.New("invalid entity type")
	ErrContentTooLong = errors.New("content too long")
)

// MaxNameLen предел длины имени в символах
const MaxNameLen = 255

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Palette именованные цвета папок, помимо #rrggbb
var Palette = map[string]bool{
	"red": true, "orange": true, "yellow": true, "green": true,
	"blue": true, "purple": true, "gray": true,
}

// NormalizeName приводит имя к NFC и обрезает пробелы по краям.
// Одинаковые на вид имена из разных ОС дают одну строку.
func NormalizeName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

// ValidateName нормализует и проверяет имя документа или папки
func ValidateName(name string) (string, error) {
	name = NormalizeName(name)
	if name == "" {
		return "", fmt.Errorf("%w: cannot be empty", ErrInvalidName)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return "", fmt.Errorf("%w: must not exceed %d characters", ErrInvalidName, MaxNameLen)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: path separators are not allowed", ErrInvalidName)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: control characters are not allowed", ErrInvalidName)
		}
	}
	return name, nil
}

// ValidateColor допускает пустой цвет, #rrggbb или цвет из Palette
func ValidateColor(color string) error {
	if color == "" || colorPattern.MatchString(color) || Palette[strings.ToLower(color)] {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, color)
}

// ValidateContent проверяет размер документа в байтах. max <= 0 отключает проверку.
func ValidateContent(content string, max int) error {
	if max > 0 && len(content) > max {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrContentTooLong, len(content), max)
	}
	return nil
}

// ValidateEntity проверяет сущность, пришедшую по сети
func ValidateEntity(e *models.Entity, maxContent int) error {
	if e == nil {
		return fmt.Errorf("%w: nil entity", ErrInvalidType)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, e.Type)
	}
	if e.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidType)
	}
	if e.IsDeleted() {
		return nil
	}
	if _, err := ValidateName(e.Name); err != nil {
		return err
	}
	if e.Type == models.EntityTypeFolder {
		return ValidateColor(e.Color)
	}
	return ValidateContent(e.Content, maxContent)
}
