// Package chat implements the two-tier reply engine: a deterministic
// keyword-rule layer backed by TF-IDF nearest-neighbor retrieval over the
// loaded corpora.
package chat

import (
	"go.uber.org/zap"

	"github.com/wellnest/wellnest/internal/corpus"
)

// Minimum adjusted-score thresholds observed in production tuning. The
// stricter value is the default; the relaxed one trades precision for
// coverage on small corpora.
const (
	DefaultMinScore = 0.25
	RelaxedMinScore = 0.10
)

// DefaultFallback is returned when neither a rule nor a confident corpus
// match is found.
const DefaultFallback = "I can help with stress, sleep, exercise, and diet 🌿"

// Result is the outcome of resolving one message. Ephemeral; one per call.
type Result struct {
	// Corpus and Row identify the winning match; Corpus is empty on fallback.
	Corpus string
	Row    int
	// Score is the weight-adjusted cosine similarity of the winning row.
	Score float64
	Reply string
}

// Engine answers free-text messages. It is built once at startup over
// immutable rules and indices, so concurrent Reply calls need no locking.
type Engine struct {
	rules    []Rule
	indices  []*corpus.Index
	minScore float64
	fallback string
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

// WithMinScore sets the minimum adjusted score for a retrieval match.
func WithMinScore(min float64) Option {
	return func(e *Engine) { e.minScore = min }
}

// WithFallback sets the reply used when nothing matches.
func WithFallback(reply string) Option {
	return func(e *Engine) { e.fallback = reply }
}

// NewEngine creates an engine over the active corpus indices, in descriptor
// declaration order.
func NewEngine(indices []*corpus.Index, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		rules:    DefaultRules,
		indices:  indices,
		minScore: DefaultMinScore,
		fallback: DefaultFallback,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve scores message against every active corpus and returns the best
// weighted match, or the fallback when no corpus clears the threshold.
// Ties between corpora go to the one declared earlier.
func (e *Engine) Resolve(message string) Result {
	var (
		bestIdx   *corpus.Index
		bestRow   int
		bestScore float64
	)
	for _, idx := range e.indices {
		row, sim := idx.BestMatch(message)
		adjusted := sim * idx.Weight()
		if adjusted > bestScore {
			bestIdx = idx
			bestRow = row
			bestScore = adjusted
		}
	}

	if bestIdx == nil || bestScore < e.minScore {
		return Result{Reply: e.fallback}
	}

	e.logger.Debug("retrieval match",
		zap.String("corpus", bestIdx.Name()),
		zap.Int("row", bestRow),
		zap.Float64("score", bestScore),
	)
	return Result{
		Corpus: bestIdx.Name(),
		Row:    bestRow,
		Score:  bestScore,
		Reply:  bestIdx.FormatAnswer(bestRow),
	}
}

// Reply returns the engine's answer for message: the first matching rule's
// response, else the best retrieval match, else the fallback.
func (e *Engine) Reply(message string) string {
	if response, ok := MatchRule(e.rules, message); ok {
		return response
	}
	return e.Resolve(message).Reply
}

// ActiveCorpora returns the names of the loaded corpora, in order.
func (e *Engine) ActiveCorpora() []string {
	names := make([]string, len(e.indices))
	for i, idx := range e.indices {
		names[i] = idx.Name()
	}
	return names
}
