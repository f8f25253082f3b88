package quiz

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// maxShuffleAttempts bounds how often Next reshuffles a quiz that came out
// already in shelving order.
const maxShuffleAttempts = 8

// Generator hands out shuffled quizzes drawn from a fixed template set.
// It is safe for concurrent use.
type Generator struct {
	templates [][]domain.CallNumber
	logger    *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a random source for a Generator. A zero seed picks a
// random seed; any other value gives a reproducible sequence.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// NewGenerator creates a Generator over templates. The templates are copied.
// A nil rng is replaced by a randomly seeded one; a nil logger by
// slog.Default.
func NewGenerator(templates [][]domain.CallNumber, rng *rand.Rand, logger *slog.Logger) (*Generator, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	owned := make([][]domain.CallNumber, len(templates))
	for i, tpl := range templates {
		if len(tpl) < 2 {
			return nil, fmt.Errorf("template %d: %w", i, ErrTemplateTooSmall)
		}
		owned[i] = slices.Clone(tpl)
	}

	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		templates: owned,
		rng:       rng,
		logger:    logger.With("component", "quiz_generator"),
	}, nil
}

// TemplateCount returns the number of templates the generator draws from.
func (g *Generator) TemplateCount() int {
	return len(g.templates)
}

// Next picks a template at random and returns its call numbers as freshly
// identified quiz items in shuffled order. When the shuffle happens to
// produce the shelving order it is repeated a bounded number of times.
func (g *Generator) Next() []domain.QuizItem {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.rng.IntN(len(g.templates))
	tpl := g.templates[idx]

	items := make([]domain.QuizItem, len(tpl))
	for i, cn := range tpl {
		items[i] = domain.NewQuizItem(cn)
	}

	attempts := 0
	for attempts < maxShuffleAttempts {
		attempts++
		g.rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
		if !Check(items).Correct {
			break
		}
	}

	g.logger.Debug("quiz generated",
		"template_index", idx,
		"item_count", len(items),
		"shuffle_attempts", attempts)

	return items
}
