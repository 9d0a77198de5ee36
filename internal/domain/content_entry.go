package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType classifies an operator-managed text.
type ContentType string

// Content types stored in the content table.
const (
	ContentTypeUILabel       ContentType = "ui_label"
	ContentTypeNumberMeaning ContentType = "number_meaning"
	ContentTypeCTAText       ContentType = "cta_text"
	ContentTypeStepText      ContentType = "step_text"
	ContentTypeTarotMeaning  ContentType = "tarot_meaning"
)

// Validation errors for ContentEntry
var (
	ErrEmptyContentID       = errors.New("content ID cannot be empty")
	ErrEmptyContentKey      = errors.New("content key cannot be empty")
	ErrEmptyContentLanguage = errors.New("content language cannot be empty")
)

// NumberMeaningKey is the content key overriding the meaning of n.
func NumberMeaningKey(n int) string {
	return fmt.Sprintf("%s_%d", ContentTypeNumberMeaning, n)
}

// TarotMeaningKey is the content key overriding the card description of n.
func TarotMeaningKey(n int) string {
	return fmt.Sprintf("%s_%d", ContentTypeTarotMeaning, n)
}

// ContentEntry is a piece of operator-managed text in one language. An entry
// takes precedence over the static catalogue for the same key.
type ContentEntry struct {
	ID          uuid.UUID   `json:"id"`
	Key         string      `json:"key"`
	Type        ContentType `json:"type"`
	Language    string      `json:"language"`
	Value       string      `json:"value"`
	Description *string     `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewContentEntry creates a validated entry with a fresh ID and timestamps.
func NewContentEntry(key string, contentType ContentType, language, value string) (*ContentEntry, error) {
	now := time.Now().UTC()
	entry := &ContentEntry{
		ID:        uuid.New(),
		Key:       strings.TrimSpace(key),
		Type:      contentType,
		Language:  strings.ToLower(strings.TrimSpace(language)),
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the ContentEntry has valid data.
func (e *ContentEntry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEmptyContentID
	}

	if e.Key == "" {
		return ErrEmptyContentKey
	}

	if !e.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidContentType, e.Type)
	}

	if e.Language == "" {
		return ErrEmptyContentLanguage
	}
	if !isLanguageCode(e.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, e.Language)
	}

	if strings.TrimSpace(e.Value) == "" {
		return ErrEmptyContent
	}

	return nil
}

// IsValid reports whether t is a known content type.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeUILabel,
		ContentTypeNumberMeaning,
		ContentTypeCTAText,
		ContentTypeStepText,
		ContentTypeTarotMeaning:
		return true
	default:
		return false
	}
}

// isLanguageCode accepts a primary subtag of 2-3 letters with optional
// alphanumeric subtags ("en", "zh-hant").
func isLanguageCode(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts[0]) < 2 || len(parts[0]) > 3 {
		return false
	}
	for i, part := range parts {
		if part == "" || len(part) > 8 {
			return false
		}
		for _, r := range part {
			isLetter := r >= 'a' && r <= 'z'
			isDigit := r >= '0' && r <= '9'
			if !isLetter && !(isDigit && i > 0) {
				return false
			}
		}
	}
	return true
}
