package corpus

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wellnest/wellnest/internal/tfidf"
)

// LoadError reports a corpus that could not be built. It is non-fatal: the
// caller excludes the corpus and continues with the rest.
type LoadError struct {
	Corpus string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("corpus %q: %v", e.Corpus, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Index is one corpus ready for retrieval: its rows, the fitted vectorizer,
// and one TF-IDF vector per row (same order as rows). Built once at startup
// and read-only afterwards, so concurrent queries need no locking.
type Index struct {
	descriptor Descriptor
	prompts    []string
	answers    []string
	model      *tfidf.Vectorizer
	rows       []tfidf.Vector
	post       func(string) string
}

// Build loads the descriptor's table and fits its vectorizer. A missing
// source, missing column, or empty table returns a *LoadError.
func Build(d Descriptor, stopwords []string) (*Index, error) {
	if err := d.validate(); err != nil {
		return nil, &LoadError{Corpus: d.Name, Err: err}
	}

	table, err := LoadTable(d.Path)
	if err != nil {
		return nil, &LoadError{Corpus: d.Name, Err: err}
	}

	promptCol := table.Column(d.PromptColumn)
	if promptCol < 0 {
		return nil, &LoadError{Corpus: d.Name, Err: fmt.Errorf("prompt column %q not found", d.PromptColumn)}
	}
	answerCol := table.Column(d.AnswerColumn)
	if answerCol < 0 {
		return nil, &LoadError{Corpus: d.Name, Err: fmt.Errorf("answer column %q not found", d.AnswerColumn)}
	}

	var prompts, answers []string
	for _, row := range table.Rows {
		if promptCol >= len(row) || answerCol >= len(row) {
			continue
		}
		prompt := strings.TrimSpace(row[promptCol])
		if prompt == "" {
			continue
		}
		prompts = append(prompts, prompt)
		answers = append(answers, row[answerCol])
	}
	if len(prompts) == 0 {
		return nil, &LoadError{Corpus: d.Name, Err: fmt.Errorf("no usable rows")}
	}

	model := tfidf.NewVectorizer(stopwords)
	rows := model.Fit(prompts)

	return &Index{
		descriptor: d,
		prompts:    prompts,
		answers:    answers,
		model:      model,
		rows:       rows,
		post:       d.postProcessor(),
	}, nil
}

// BuildAll builds every descriptor, logging a warning for each excluded
// corpus, and returns the active indices in declaration order.
func BuildAll(descriptors []Descriptor, stopwords []string, logger *zap.Logger) []*Index {
	indices := make([]*Index, 0, len(descriptors))
	for _, d := range descriptors {
		idx, err := Build(d, stopwords)
		if err != nil {
			logger.Warn("corpus excluded",
				zap.String("corpus", d.Name),
				zap.String("path", d.Path),
				zap.Error(err),
			)
			continue
		}
		logger.Info("corpus loaded",
			zap.String("corpus", d.Name),
			zap.Int("rows", idx.Size()),
			zap.Int("vocabulary", idx.model.VocabularySize()),
		)
		indices = append(indices, idx)
	}
	return indices
}

// Name returns the corpus name.
func (idx *Index) Name() string { return idx.descriptor.Name }

// Weight returns the corpus priority weight.
func (idx *Index) Weight() float64 { return idx.descriptor.Weight }

// Size returns the number of indexed rows.
func (idx *Index) Size() int { return len(idx.prompts) }

// Prompt returns the prompt text of row i.
func (idx *Index) Prompt(i int) string { return idx.prompts[i] }

// BestMatch vectorizes message with this corpus's own fitted model and
// returns the row with the highest cosine similarity. On ties the earlier
// row wins. A message with no vocabulary overlap scores 0.
func (idx *Index) BestMatch(message string) (row int, score float64) {
	query := idx.model.Transform(message)
	if len(query) == 0 {
		return 0, 0
	}
	best := 0
	bestScore := 0.0
	for i, vec := range idx.rows {
		if sim := tfidf.Cosine(query, vec); sim > bestScore {
			best = i
			bestScore = sim
		}
	}
	return best, bestScore
}

// FormatAnswer applies the corpus's post-processing transform to the answer
// value of row i and substitutes it into the response template.
func (idx *Index) FormatAnswer(i int) string {
	return fmt.Sprintf(idx.descriptor.Template, idx.post(idx.answers[i]))
}
