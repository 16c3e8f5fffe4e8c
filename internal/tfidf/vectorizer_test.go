package tfidf

import (
	"math"
	"testing"
)

func TestFitTransform_identicalTextScoresOne(t *testing.T) {
	docs := []string{
		"how can I manage anxiety",
		"tips for better sleep quality",
		"healthy eating on a budget",
	}
	v := NewVectorizer(nil)
	rows := v.Fit(docs)
	if len(rows) != len(docs) {
		t.Fatalf("expected %d row vectors, got %d", len(docs), len(rows))
	}

	for i, doc := range docs {
		q := v.Transform(doc)
		sim := Cosine(q, rows[i])
		if math.Abs(sim-1.0) > 1e-9 {
			t.Errorf("doc %d: cosine against itself = %f, want 1.0", i, sim)
		}
	}
}

func TestTransform_noVocabularyOverlap(t *testing.T) {
	v := NewVectorizer(nil)
	rows := v.Fit([]string{"sleep hygiene matters", "exercise daily"})

	q := v.Transform("zzzz qqqq")
	if len(q) != 0 {
		t.Errorf("expected empty vector, got %v", q)
	}
	for i, row := range rows {
		if sim := Cosine(q, row); sim != 0 {
			t.Errorf("row %d: expected similarity 0, got %f", i, sim)
		}
	}
}

func TestTransform_emptyAndWhitespace(t *testing.T) {
	v := NewVectorizer(nil)
	v.Fit([]string{"some prompt text"})

	for _, text := range []string{"", "   ", "\t\n"} {
		if vec := v.Transform(text); len(vec) != 0 {
			t.Errorf("Transform(%q) = %v, want empty", text, vec)
		}
	}
}

func TestFit_stopwordsExcluded(t *testing.T) {
	v := NewVectorizer(nil)
	v.Fit([]string{"the anxiety is a problem", "the sleep is an issue"})

	for _, stop := range []string{"the", "is", "a", "an"} {
		if _, ok := v.vocab[stop]; ok {
			t.Errorf("stopword %q should not be in vocabulary", stop)
		}
	}
	if _, ok := v.vocab["anxiety"]; !ok {
		t.Error("content word should be in vocabulary")
	}
}

func TestFit_customStopwords(t *testing.T) {
	v := NewVectorizer([]string{"anxiety"})
	v.Fit([]string{"anxiety the problem"})

	if _, ok := v.vocab["anxiety"]; ok {
		t.Error("custom stopword should be excluded")
	}
	if _, ok := v.vocab["the"]; !ok {
		t.Error("default stopwords should not apply when a custom list is given")
	}
}

func TestIDF_rareTermsWeighMore(t *testing.T) {
	docs := []string{
		"sleep advice sleep tips",
		"sleep trouble at night",
		"panic attacks and worry",
	}
	v := NewVectorizer(nil)
	v.Fit(docs)

	common := v.idf[v.vocab["sleep"]]
	rare := v.idf[v.vocab["panic"]]
	if rare <= common {
		t.Errorf("rare term idf %f should exceed common term idf %f", rare, common)
	}
}

func TestNewFittedVectorizer(t *testing.T) {
	vocab := map[string]int{"happy": 0, "sad": 1}
	idf := []float64{1.5, 2.0}
	v := NewFittedVectorizer(vocab, idf)

	vec := v.Transform("happy happy sad")
	if got := vec[0]; math.Abs(got-3.0) > 1e-9 {
		t.Errorf("weight for 'happy' = %f, want 3.0", got)
	}
	if got := vec[1]; math.Abs(got-2.0) > 1e-9 {
		t.Errorf("weight for 'sad' = %f, want 2.0", got)
	}
}

func TestCosine_zeroVectors(t *testing.T) {
	a := Vector{0: 1.0}
	if got := Cosine(a, Vector{}); got != 0 {
		t.Errorf("cosine with empty vector = %f, want 0", got)
	}
	if got := Cosine(Vector{}, Vector{}); got != 0 {
		t.Errorf("cosine of two empty vectors = %f, want 0", got)
	}
}

func TestVector_dot(t *testing.T) {
	a := Vector{0: 1, 2: 2, 5: 3}
	b := Vector{2: 4, 5: 1, 9: 7}
	if got := a.Dot(b); got != 11 {
		t.Errorf("dot = %f, want 11", got)
	}
	if got := b.Dot(a); got != 11 {
		t.Errorf("dot should be symmetric, got %f", got)
	}
}
