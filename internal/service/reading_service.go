package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/phrazzld/numerology-api/internal/catalogue"
	"github.com/phrazzld/numerology-api/internal/content"
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/redact"
)

// CatalogueEntry is the static interpretation of one number in a language,
// after content overrides.
type CatalogueEntry struct {
	Number   int               `json:"number"`
	Language string            `json:"language"`
	Meaning  string            `json:"meaning"`
	Card     *domain.TarotCard `json:"card,omitempty"`
}

// TextEntry is a content text resolved for one language.
type TextEntry struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Value    string `json:"value"`
}

// ReadingService defines the numerology use cases.
type ReadingService interface {
	// CreateReading validates req and computes the four numbers with their
	// meanings, tarot binomials when requested, and the archetype.
	CreateReading(ctx context.Context, req domain.ReadingRequest) (*domain.Reading, error)

	// NameNumber computes one name-based number. kind must not be
	// numerology.KindPersonalYear.
	NameNumber(ctx context.Context, kind numerology.Kind, name string) (numerology.Result, error)

	// PersonalYear computes the Personal Year number.
	PersonalYear(ctx context.Context, day, month, year int) (numerology.Result, error)

	// Reduce exposes the digit-sum reduction of a non-negative n.
	Reduce(n int) (numerology.Reduction, error)

	// Binomial exposes the tarot binomial of a non-negative n.
	Binomial(n int) (numerology.Binomial, error)

	// CatalogueEntry returns the meaning and card of n in language.
	// Returns ErrNotCatalogued when n has no catalogue entry.
	CatalogueEntry(ctx context.Context, n int, language string) (*CatalogueEntry, error)

	// Catalogue lists every catalogued number in language, ascending.
	Catalogue(ctx context.Context, language string) []*CatalogueEntry

	// Text resolves key in language to the stored entry, then fallback, then
	// the key itself.
	Text(ctx context.Context, language, key, fallback string) (*TextEntry, error)

	// Content lists the operator-managed entries for language.
	Content(ctx context.Context, language string) ([]*domain.ContentEntry, error)

	// Language resolves requested language values, in priority order, to a
	// supported code.
	Language(values ...string) string
}

// Option configures a reading service.
type Option func(*readingServiceImpl)

// WithClock sets the clock used to default the reference year.
func WithClock(now func() time.Time) Option {
	return func(s *readingServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

type readingServiceImpl struct {
	engine     numerology.Service
	resolver   *content.Resolver
	negotiator *catalogue.Negotiator
	now        func() time.Time
	logger     *slog.Logger
}

// NewReadingService creates a ReadingService.
// It returns an error if any of the required dependencies are nil.
func NewReadingService(
	engine numerology.Service,
	resolver *content.Resolver,
	negotiator *catalogue.Negotiator,
	logger *slog.Logger,
	opts ...Option,
) (ReadingService, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: engine cannot be nil", ErrMissingDependency)
	}
	if resolver == nil {
		return nil, fmt.Errorf("%w: resolver cannot be nil", ErrMissingDependency)
	}
	if negotiator == nil {
		return nil, fmt.Errorf("%w: negotiator cannot be nil", ErrMissingDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &readingServiceImpl{
		engine:     engine,
		resolver:   resolver,
		negotiator: negotiator,
		now:        time.Now,
		logger:     logger.With(slog.String("component", "reading_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *readingServiceImpl) Language(values ...string) string {
	return s.negotiator.Match(values...)
}

func (s *readingServiceImpl) CreateReading(
	ctx context.Context,
	req domain.ReadingRequest,
) (*domain.Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Debug("reading request rejected", slog.String("error", err.Error()))
		return nil, err
	}

	lang := s.negotiator.Match(req.Language)
	year := req.ReferenceYear
	if year == 0 {
		year = s.now().Year()
	}

	reading := &domain.Reading{
		Language:      lang,
		ReferenceYear: year,
		Destiny: s.numberReading(ctx, numerology.KindDestiny,
			s.engine.ByName(req.FullName, numerology.ModeAllLetters), lang, req.IncludeTarot),
		Soul: s.numberReading(ctx, numerology.KindSoul,
			s.engine.ByName(req.FullName, numerology.ModeVowels), lang, req.IncludeTarot),
		Personality: s.numberReading(ctx, numerology.KindPersonality,
			s.engine.ByName(req.FullName, numerology.ModeConsonants), lang, req.IncludeTarot),
		PersonalYear: s.numberReading(ctx, numerology.KindPersonalYear,
			s.engine.ByDate(req.BirthDay, req.BirthMonth, year), lang, req.IncludeTarot),
	}
	reading.Archetype = domain.Archetype(s.engine.BinomialOf(reading.Destiny.Result.FinalNumber))

	log.Info("reading computed",
		slog.String("language", lang),
		slog.Int("reference_year", year),
		slog.Bool("include_tarot", req.IncludeTarot))
	return reading, nil
}

func (s *readingServiceImpl) numberReading(
	ctx context.Context,
	kind numerology.Kind,
	result numerology.Result,
	lang string,
	includeTarot bool,
) domain.NumberReading {
	nr := domain.NumberReading{
		Kind:    kind,
		Result:  result,
		Meaning: s.resolver.NumberMeaning(ctx, result.FinalNumber, lang),
	}
	if includeTarot {
		nr.Tarot = s.tarotReading(ctx, result.FinalNumber, lang)
	}
	return nr
}

// tarotReading lists the master card before the reduced card. Numbers the
// catalogue has no card for (0, 33, 44) contribute no card.
func (s *readingServiceImpl) tarotReading(ctx context.Context, n int, lang string) *domain.TarotReading {
	b := s.engine.BinomialOf(n)
	tr := &domain.TarotReading{
		MasterNumber:  b.MasterNumber,
		ReducedNumber: b.ReducedNumber,
		Cards:         make([]domain.TarotCard, 0, 2),
	}
	numbers := []int{b.ReducedNumber}
	if b.MasterNumber != nil {
		numbers = []int{*b.MasterNumber, b.ReducedNumber}
	}
	for _, number := range numbers {
		if card, ok := s.resolver.Card(ctx, number, lang); ok {
			tr.Cards = append(tr.Cards, card)
		}
	}
	return tr
}

func (s *readingServiceImpl) NameNumber(
	ctx context.Context,
	kind numerology.Kind,
	name string,
) (numerology.Result, error) {
	mode, ok := kind.NameMode()
	if !ok {
		return numerology.Result{}, fmt.Errorf("%w: %q is not name based", numerology.ErrUnknownKind, kind)
	}
	if strings.TrimSpace(name) == "" {
		return numerology.Result{}, domain.NewValidationError("name", "is required", nil)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return numerology.Result{}, domain.NewValidationError("name",
			fmt.Sprintf("must be at most %d characters", domain.MaxNameLength), nil)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("computing name number",
		slog.String("kind", string(kind)))
	return s.engine.ByName(name, mode), nil
}

func (s *readingServiceImpl) PersonalYear(
	ctx context.Context,
	day, month, year int,
) (numerology.Result, error) {
	if err := domain.ValidateDate(day, month, year, "day", "month", "year"); err != nil {
		return numerology.Result{}, err
	}
	if year == 0 {
		year = s.now().Year()
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("computing personal year",
		slog.Int("reference_year", year))
	return s.engine.ByDate(day, month, year), nil
}

func (s *readingServiceImpl) Reduce(n int) (numerology.Reduction, error) {
	if n < 0 {
		return numerology.Reduction{}, domain.NewValidationError("n", "must be a non-negative integer", nil)
	}
	return s.engine.Reduce(n), nil
}

func (s *readingServiceImpl) Binomial(n int) (numerology.Binomial, error) {
	if n < 0 {
		return numerology.Binomial{}, domain.NewValidationError("n", "must be a non-negative integer", nil)
	}
	return s.engine.BinomialOf(n), nil
}

func (s *readingServiceImpl) CatalogueEntry(
	ctx context.Context,
	n int,
	language string,
) (*CatalogueEntry, error) {
	if !s.resolver.Catalogue().Has(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotCatalogued, n)
	}

	return s.catalogueEntry(ctx, n, s.negotiator.Match(language)), nil
}

func (s *readingServiceImpl) Catalogue(ctx context.Context, language string) []*CatalogueEntry {
	lang := s.negotiator.Match(language)
	numbers := s.resolver.Catalogue().Numbers()

	entries := make([]*CatalogueEntry, 0, len(numbers))
	for _, n := range numbers {
		entries = append(entries, s.catalogueEntry(ctx, n, lang))
	}
	return entries
}

func (s *readingServiceImpl) catalogueEntry(ctx context.Context, n int, lang string) *CatalogueEntry {
	entry := &CatalogueEntry{
		Number:   n,
		Language: lang,
		Meaning:  s.resolver.NumberMeaning(ctx, n, lang),
	}
	if card, ok := s.resolver.Card(ctx, n, lang); ok {
		entry.Card = &card
	}
	return entry
}

func (s *readingServiceImpl) Text(
	ctx context.Context,
	language, key, fallback string,
) (*TextEntry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.NewValidationError("key", "is required", nil)
	}

	lang := s.negotiator.Match(language)
	return &TextEntry{
		Key:      key,
		Language: lang,
		Value:    s.resolver.Text(ctx, lang, key, fallback),
	}, nil
}

func (s *readingServiceImpl) Content(ctx context.Context, language string) ([]*domain.ContentEntry, error) {
	lang := s.negotiator.Match(language)
	entries, err := s.resolver.Entries(ctx, lang)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list content",
			slog.String("language", lang),
			slog.String("error", redact.Error(err)))
		return nil, NewServiceError("reading", "list_content", err)
	}
	return entries, nil
}
