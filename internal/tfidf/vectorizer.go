// Package tfidf provides a term-frequency / inverse-document-frequency
// vectorizer with cosine similarity over sparse vectors.
package tfidf

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vector is a sparse term-weight vector keyed by vocabulary index.
type Vector map[int]float64

// Norm returns the L2 norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors.
func (v Vector) Dot(other Vector) float64 {
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for i, w := range a {
		if ow, ok := b[i]; ok {
			dot += w * ow
		}
	}
	return dot
}

// Cosine returns the cosine similarity of two vectors.
// Returns 0 when either vector is all-zero.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}

// Vectorizer maps text to TF-IDF weighted vectors over a fitted vocabulary.
// A fitted Vectorizer is immutable; Transform only allocates per-call state,
// so concurrent use is safe.
type Vectorizer struct {
	vocab     map[string]int
	idf       []float64
	stopwords map[string]struct{}
}

// NewVectorizer creates an unfitted vectorizer. Pass nil to use
// DefaultStopwords; pass an empty slice to disable stopword filtering.
func NewVectorizer(stopwords []string) *Vectorizer {
	if stopwords == nil {
		stopwords = DefaultStopwords
	}
	return &Vectorizer{stopwords: stopwordSet(stopwords)}
}

// NewFittedVectorizer creates a vectorizer from an already-fitted vocabulary
// and IDF table, e.g. the export of an offline-trained model. idf must have
// one entry per vocabulary index.
func NewFittedVectorizer(vocab map[string]int, idf []float64) *Vectorizer {
	return &Vectorizer{vocab: vocab, idf: idf, stopwords: map[string]struct{}{}}
}

// VocabularySize returns the number of fitted terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Fit builds the vocabulary and IDF table from docs and returns one TF-IDF
// vector per document, in document order. IDF uses the smoothed form
// ln((1+n)/(1+df)) + 1 so that terms present in every document still carry
// weight.
func (v *Vectorizer) Fit(docs []string) []Vector {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = v.termCounts(doc)
		for term := range counts[i] {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i := range docs {
		vectors[i] = v.weigh(counts[i])
	}
	return vectors
}

// Transform vectorizes text using the fitted vocabulary. Terms outside the
// vocabulary are ignored; a text with no known terms yields an empty vector.
func (v *Vectorizer) Transform(text string) Vector {
	return v.weigh(v.termCounts(text))
}

func (v *Vectorizer) weigh(counts map[string]int) Vector {
	vec := make(Vector, len(counts))
	for term, count := range counts {
		idx, ok := v.vocab[term]
		if !ok {
			continue
		}
		vec[idx] = float64(count) * v.idf[idx]
	}
	return vec
}

func (v *Vectorizer) termCounts(text string) map[string]int {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	counts := make(map[string]int)
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, skip := v.stopwords[w]; skip {
			continue
		}
		counts[w]++
	}
	return counts
}
