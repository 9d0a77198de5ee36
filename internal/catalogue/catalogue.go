package catalogue

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"gopkg.in/yaml.v3"
)

const (
	meaningsPath = "data/meanings.yaml"
	tarotPath    = "data/tarot.yaml"
)

// ErrInvalidCatalogue is returned when catalogue data is malformed or incomplete.
var ErrInvalidCatalogue = errors.New("invalid catalogue")

//go:embed data/*.yaml
var embeddedFS embed.FS

var defaultCatalogue = mustLoadEmbedded()

// CardText is a tarot archetype rendered in a single language.
type CardText struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type card struct {
	Number      int               `yaml:"number"`
	Name        map[string]string `yaml:"name"`
	Description map[string]string `yaml:"description"`
}

type meaningsFile struct {
	Languages []string                  `yaml:"languages"`
	Meanings  map[int]map[string]string `yaml:"meanings"`
}

type tarotFile struct {
	Cards []card `yaml:"cards"`
}

// Catalogue holds the number meanings and tarot archetypes keyed by reduced
// number. It is immutable after loading and safe for concurrent use.
type Catalogue struct {
	languages []string
	meanings  map[int]map[string]string
	cards     map[int]card
	numbers   []int
}

// Default returns the catalogue compiled into the binary.
func Default() *Catalogue {
	return defaultCatalogue
}

// LoadEmbedded parses the catalogue data embedded in this package.
func LoadEmbedded() (*Catalogue, error) {
	return Load(embeddedFS)
}

func mustLoadEmbedded() *Catalogue {
	c, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("load embedded catalogue: %v", err))
	}
	return c
}

// Load reads data/meanings.yaml and data/tarot.yaml from fsys.
//
// Every key must be a value the reduction engine can produce (1..9 or a master
// number), every meaning and card must be present in every declared language,
// and every card must have a matching meaning.
func Load(fsys fs.FS) (*Catalogue, error) {
	var mf meaningsFile
	if err := decodeFile(fsys, meaningsPath, &mf); err != nil {
		return nil, err
	}
	var tf tarotFile
	if err := decodeFile(fsys, tarotPath, &tf); err != nil {
		return nil, err
	}

	if len(mf.Languages) == 0 {
		return nil, fmt.Errorf("%w: %s declares no languages", ErrInvalidCatalogue, meaningsPath)
	}
	if len(mf.Meanings) == 0 {
		return nil, fmt.Errorf("%w: %s declares no meanings", ErrInvalidCatalogue, meaningsPath)
	}

	c := &Catalogue{
		languages: slices.Clone(mf.Languages),
		meanings:  make(map[int]map[string]string, len(mf.Meanings)),
		cards:     make(map[int]card, len(tf.Cards)),
	}

	for n, texts := range mf.Meanings {
		if !reachable(n) {
			return nil, fmt.Errorf("%w: meaning key %d is not a reduced number", ErrInvalidCatalogue, n)
		}
		if lang, ok := missingLanguage(c.languages, texts); !ok {
			return nil, fmt.Errorf("%w: meaning %d has no %q text", ErrInvalidCatalogue, n, lang)
		}
		c.meanings[n] = texts
		c.numbers = append(c.numbers, n)
	}
	slices.Sort(c.numbers)

	for _, cd := range tf.Cards {
		if _, dup := c.cards[cd.Number]; dup {
			return nil, fmt.Errorf("%w: card %d defined twice", ErrInvalidCatalogue, cd.Number)
		}
		if _, ok := c.meanings[cd.Number]; !ok {
			return nil, fmt.Errorf("%w: card %d has no meaning", ErrInvalidCatalogue, cd.Number)
		}
		if lang, ok := missingLanguage(c.languages, cd.Name); !ok {
			return nil, fmt.Errorf("%w: card %d has no %q name", ErrInvalidCatalogue, cd.Number, lang)
		}
		if lang, ok := missingLanguage(c.languages, cd.Description); !ok {
			return nil, fmt.Errorf("%w: card %d has no %q description", ErrInvalidCatalogue, cd.Number, lang)
		}
		c.cards[cd.Number] = cd
	}

	return c, nil
}

func decodeFile(fsys fs.FS, path string, out any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidCatalogue, path, err)
	}
	return nil
}

func reachable(n int) bool {
	return (n >= 1 && n <= 9) || numerology.IsMaster(n)
}

func missingLanguage(languages []string, texts map[string]string) (string, bool) {
	for _, lang := range languages {
		if texts[lang] == "" {
			return lang, false
		}
	}
	return "", true
}

// Meaning returns the meaning of n in lang. Lookup is exact: no language
// fallback is applied here.
func (c *Catalogue) Meaning(n int, lang string) (string, bool) {
	text, ok := c.meanings[n][lang]
	return text, ok
}

// Card returns the tarot archetype for n rendered in lang.
func (c *Catalogue) Card(n int, lang string) (CardText, bool) {
	cd, ok := c.cards[n]
	if !ok {
		return CardText{}, false
	}
	name, ok := cd.Name[lang]
	if !ok {
		return CardText{}, false
	}
	return CardText{
		Number:      n,
		Name:        name,
		Description: cd.Description[lang],
	}, true
}

// Has reports whether n has an entry.
func (c *Catalogue) Has(n int) bool {
	_, ok := c.meanings[n]
	return ok
}

// Numbers returns the catalogue keys in ascending order.
func (c *Catalogue) Numbers() []int {
	return slices.Clone(c.numbers)
}

// Languages returns the language codes every entry is written in.
func (c *Catalogue) Languages() []string {
	return slices.Clone(c.languages)
}

// Supports reports whether lang is one of the catalogue languages.
func (c *Catalogue) Supports(lang string) bool {
	return slices.Contains(c.languages, lang)
}
