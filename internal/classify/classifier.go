// Package classify provides inference for the offline-trained emotion
// classifier: a linear model over TF-IDF features with a fixed label set.
package classify

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wellnest/wellnest/internal/tfidf"
)

// modelFile is the JSON export of the trained model: the fitted vocabulary
// and IDF table, plus one weight row and intercept per class. Training is
// offline tooling and not part of this service.
type modelFile struct {
	Labels     []string       `json:"labels"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Weights    [][]float64    `json:"weights"`
	Intercepts []float64      `json:"intercepts"`
}

// Classifier predicts a single emotion label for a text. Immutable after
// load; safe for concurrent use.
type Classifier struct {
	labels     []string
	vectorizer *tfidf.Vectorizer
	weights    [][]float64
	intercepts []float64
}

// LoadModel reads a model export from path and validates its shape.
func LoadModel(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m modelFile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	return newClassifier(&m)
}

func newClassifier(m *modelFile) (*Classifier, error) {
	if len(m.Labels) == 0 {
		return nil, fmt.Errorf("model has no labels")
	}
	if len(m.Weights) != len(m.Labels) || len(m.Intercepts) != len(m.Labels) {
		return nil, fmt.Errorf("model shape mismatch: %d labels, %d weight rows, %d intercepts",
			len(m.Labels), len(m.Weights), len(m.Intercepts))
	}
	if len(m.IDF) != len(m.Vocabulary) {
		return nil, fmt.Errorf("model shape mismatch: %d idf entries for %d vocabulary terms",
			len(m.IDF), len(m.Vocabulary))
	}
	for i, row := range m.Weights {
		if len(row) != len(m.Vocabulary) {
			return nil, fmt.Errorf("weight row %d has %d entries, want %d", i, len(row), len(m.Vocabulary))
		}
	}
	return &Classifier{
		labels:     m.Labels,
		vectorizer: tfidf.NewFittedVectorizer(m.Vocabulary, m.IDF),
		weights:    m.Weights,
		intercepts: m.Intercepts,
	}, nil
}

// Labels returns the model's label set in class order.
func (c *Classifier) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Predict returns the label whose linear score is highest for text. A text
// with no vocabulary overlap still yields a label (the intercepts decide).
func (c *Classifier) Predict(text string) string {
	vec := c.vectorizer.Transform(text)

	best := 0
	bestScore := c.score(0, vec)
	for class := 1; class < len(c.labels); class++ {
		if s := c.score(class, vec); s > bestScore {
			best = class
			bestScore = s
		}
	}
	return c.labels[best]
}

func (c *Classifier) score(class int, vec tfidf.Vector) float64 {
	score := c.intercepts[class]
	row := c.weights[class]
	for idx, w := range vec {
		score += row[idx] * w
	}
	return score
}
