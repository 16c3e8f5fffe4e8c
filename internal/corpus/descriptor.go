// Package corpus loads tabular (prompt, answer) knowledge bases and builds
// the per-corpus TF-IDF indices used by the chat engine.
package corpus

import (
	"fmt"

	"github.com/wellnest/wellnest/pkg/utils"
)

// Kind selects the answer post-processing applied before templating.
type Kind int

const (
	// KindPassthrough substitutes the raw answer into the template unchanged.
	KindPassthrough Kind = iota
	// KindCategorical maps a categorical answer code to its human-readable label.
	KindCategorical
	// KindTruncate trims long free-text answers to a display length.
	KindTruncate
)

// ParseKind converts a config string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "passthrough":
		return KindPassthrough, nil
	case "categorical":
		return KindCategorical, nil
	case "truncate":
		return KindTruncate, nil
	}
	return KindPassthrough, fmt.Errorf("unknown corpus kind %q", s)
}

// UnknownLabel is substituted when a categorical answer code has no mapping.
const UnknownLabel = "unknown"

// DefaultMaxAnswerLen is the display length for truncated answers.
const DefaultMaxAnswerLen = 240

// Descriptor declares one corpus: where its table lives, which columns hold
// prompts and answers, and how a winning answer is rendered. Descriptors are
// static; the set of active corpora changes only by restarting with different
// descriptors.
type Descriptor struct {
	Name         string
	Path         string
	PromptColumn string
	AnswerColumn string
	// Template must contain exactly one %s placeholder.
	Template string
	// Weight multiplies raw cosine similarity during cross-corpus arbitration.
	Weight float64
	Kind   Kind
	// Labels maps categorical answer codes to display labels (KindCategorical).
	Labels map[string]string
	// MaxAnswerLen bounds answer display length (KindTruncate).
	MaxAnswerLen int
}

// postProcessor resolves the descriptor's answer transform at construction
// time, so no per-kind dispatch happens on the query path.
func (d *Descriptor) postProcessor() func(string) string {
	switch d.Kind {
	case KindCategorical:
		labels := d.Labels
		return func(answer string) string {
			if label, ok := labels[answer]; ok {
				return label
			}
			return UnknownLabel
		}
	case KindTruncate:
		maxLen := d.MaxAnswerLen
		if maxLen <= 0 {
			maxLen = DefaultMaxAnswerLen
		}
		return func(answer string) string {
			return utils.Truncate(answer, maxLen)
		}
	default:
		return func(answer string) string { return answer }
	}
}

// validate checks the descriptor's static fields.
func (d *Descriptor) validate() error {
	if d.Name == "" {
		return fmt.Errorf("corpus descriptor missing name")
	}
	if d.Path == "" {
		return fmt.Errorf("corpus %q: missing source path", d.Name)
	}
	if d.PromptColumn == "" || d.AnswerColumn == "" {
		return fmt.Errorf("corpus %q: prompt and answer columns are required", d.Name)
	}
	if d.Weight < 0 {
		return fmt.Errorf("corpus %q: weight must be >= 0", d.Name)
	}
	return nil
}
