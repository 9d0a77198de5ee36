package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/numerology-api/internal/catalogue"
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/redact"
	"github.com/phrazzld/numerology-api/internal/store"
)

// ErrNoCatalogue is returned by NewResolver when no catalogue is given.
var ErrNoCatalogue = errors.New("content resolver requires a catalogue")

// Resolver answers text lookups by preferring operator-managed entries over
// the static catalogue.
//
// Resolution order for a number meaning:
//  1. content store entry number_meaning_<n> in the requested language
//  2. catalogue meaning in the requested language
//  3. catalogue meaning in the default language
//  4. empty string
//
// A failing store is logged and treated as empty, so lookups never fail.
type Resolver struct {
	catalogue       *catalogue.Catalogue
	source          store.ContentStore
	defaultLanguage string
	logger          *slog.Logger
}

// NewResolver creates a Resolver. source may be nil, in which case only the
// catalogue is consulted. If logger is nil, a default logger will be used.
func NewResolver(
	cat *catalogue.Catalogue,
	source store.ContentStore,
	defaultLanguage string,
	logger *slog.Logger,
) (*Resolver, error) {
	if cat == nil {
		return nil, ErrNoCatalogue
	}
	if !cat.Supports(defaultLanguage) {
		return nil, fmt.Errorf("%w: default language %q", catalogue.ErrUnsupportedLanguage, defaultLanguage)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		catalogue:       cat,
		source:          source,
		defaultLanguage: defaultLanguage,
		logger:          logger.With(slog.String("component", "content_resolver")),
	}, nil
}

// DefaultLanguage returns the language used when a text is missing in the
// requested one.
func (r *Resolver) DefaultLanguage() string {
	return r.defaultLanguage
}

// Catalogue returns the static catalogue behind the resolver.
func (r *Resolver) Catalogue() *catalogue.Catalogue {
	return r.catalogue
}

// NumberMeaning returns the interpretation of n in language.
func (r *Resolver) NumberMeaning(ctx context.Context, n int, language string) string {
	if text, ok := r.lookup(ctx, language, domain.NumberMeaningKey(n)); ok {
		return text
	}
	if text, ok := r.catalogue.Meaning(n, language); ok {
		return text
	}
	if text, ok := r.catalogue.Meaning(n, r.defaultLanguage); ok {
		return text
	}
	return ""
}

// Card returns the tarot archetype of n. The name comes from the catalogue
// (requested language, then default language); the description may be
// overridden by a tarot_meaning_<n> entry in the requested language.
// The second value is false when n has no archetype.
func (r *Resolver) Card(ctx context.Context, n int, language string) (domain.TarotCard, bool) {
	text, ok := r.catalogue.Card(n, language)
	if !ok {
		text, ok = r.catalogue.Card(n, r.defaultLanguage)
	}
	if !ok {
		return domain.TarotCard{}, false
	}

	card := domain.TarotCard{
		Number:      text.Number,
		Name:        text.Name,
		Description: text.Description,
	}
	if override, ok := r.lookup(ctx, language, domain.TarotMeaningKey(n)); ok {
		card.Description = override
	}
	return card, true
}

// Text returns the entry stored for key in language, then fallback, then the
// key itself so a missing label is visible rather than blank.
func (r *Resolver) Text(ctx context.Context, language, key, fallback string) string {
	if text, ok := r.lookup(ctx, language, key); ok {
		return text
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// Entries lists the stored entries for language. Without a content store the
// list is empty. Unlike the lookups, a store failure is returned.
func (r *Resolver) Entries(ctx context.Context, language string) ([]*domain.ContentEntry, error) {
	if r.source == nil {
		return []*domain.ContentEntry{}, nil
	}
	entries, err := r.source.ListByLanguage(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("list content for %q: %w", language, err)
	}
	return entries, nil
}

func (r *Resolver) lookup(ctx context.Context, language, key string) (string, bool) {
	if r.source == nil {
		return "", false
	}

	text, err := r.source.Lookup(ctx, language, key)
	switch {
	case err == nil:
		return text, text != ""
	case store.IsNotFoundError(err):
		return "", false
	default:
		logger.FromContextOrDefault(ctx, r.logger).Warn("content lookup failed, using static text",
			slog.String("language", language),
			slog.String("content_key", key),
			slog.String("error", redact.Error(err)))
		return "", false
	}
}
