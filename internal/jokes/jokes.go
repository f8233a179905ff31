package jokes

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sonyjtp/joke-bot/internal/models"
)

var ErrNoJokes = errors.New("no jokes for language/category pair")

// Catalog serves joke texts from an in-process store keyed by language and
// category. CategoryAll draws from the union of the concrete categories.
type Catalog struct {
	entries map[models.Language]map[models.Category][]string
	rng     *rand.Rand
}

func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		entries: defaultEntries,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Option func(*Catalog)

// WithRand replaces the selection generator; tests use it to pin draws.
func WithRand(rng *rand.Rand) Option {
	return func(c *Catalog) {
		c.rng = rng
	}
}

func (c *Catalog) Get(language models.Language, category models.Category) (string, error) {
	pool := c.pool(language, category)
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %s/%s", ErrNoJokes, language, category)
	}
	return pool[c.rng.IntN(len(pool))], nil
}

func (c *Catalog) pool(language models.Language, category models.Category) []string {
	byCategory, ok := c.entries[language]
	if !ok {
		return nil
	}

	if category != models.CategoryAll {
		return byCategory[category]
	}

	var pool []string
	for _, cat := range models.Categories() {
		if cat == models.CategoryAll {
			continue
		}
		pool = append(pool, byCategory[cat]...)
	}
	return pool
}

func (c *Catalog) Languages() []models.Language {
	return models.Languages()
}

func (c *Catalog) Categories() []models.Category {
	return models.Categories()
}
