package config

import "github.com/wellnest/wellnest/internal/chat"

// EmotionLabels maps the emotion corpus's categorical answer codes to
// display labels. Codes outside the map render as the generic label.
var EmotionLabels = map[string]string{
	"0": "sadness",
	"1": "joy",
	"2": "love",
	"3": "anger",
	"4": "fear",
	"5": "surprise",
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/wellnest/data/users.db"
	}
	if cfg.Datasets.Dir == "" {
		cfg.Datasets.Dir = "/usr/local/var/wellnest/datasets"
	}
	if cfg.Chat.MinScore == 0 {
		cfg.Chat.MinScore = chat.DefaultMinScore
	}
	if cfg.Chat.Fallback == "" {
		cfg.Chat.Fallback = chat.DefaultFallback
	}
	if cfg.Datasets.Corpora == nil {
		cfg.Datasets.Corpora = DefaultCorpora()
	}
	for i := range cfg.Datasets.Corpora {
		if cfg.Datasets.Corpora[i].Weight == 0 {
			cfg.Datasets.Corpora[i].Weight = 1.0
		}
		if cfg.Datasets.Corpora[i].Template == "" {
			cfg.Datasets.Corpora[i].Template = "%s"
		}
	}
}

// DefaultCorpora is the stock WellNest corpus set: the curated FAQ outranks
// the counseling transcripts, which outrank the noisy emotion dataset.
func DefaultCorpora() []CorpusConfig {
	return []CorpusConfig{
		{
			Name:         "faq",
			Path:         "mental_health_faq.csv",
			PromptColumn: "questions",
			AnswerColumn: "answers",
			Template:     "%s",
			Weight:       2.0,
		},
		{
			Name:         "counseling",
			Path:         "counseling_conversations.csv",
			PromptColumn: "context",
			AnswerColumn: "response",
			Template:     "%s",
			Weight:       1.2,
			Kind:         "truncate",
		},
		{
			Name:         "emotions",
			Path:         "emotions.csv",
			PromptColumn: "text",
			AnswerColumn: "label",
			Template:     "It sounds like you may be feeling %s 💙",
			Weight:       1.0,
			Kind:         "categorical",
			Labels:       EmotionLabels,
		},
	}
}
