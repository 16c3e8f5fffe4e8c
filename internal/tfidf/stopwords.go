package tfidf

// DefaultStopwords contains common English words excluded from term weighting.
var DefaultStopwords = []string{
	"the", "a", "an", "is", "are", "was", "were", "do", "does", "did",
	"have", "has", "had", "be", "been", "being", "will", "would", "could",
	"should", "may", "might", "can", "shall", "not", "no", "and", "or",
	"but", "if", "then", "than", "so", "as", "at", "by", "for", "from",
	"in", "into", "of", "on", "to", "with", "about", "up", "out", "it",
	"its", "this", "that", "you", "me", "i", "my", "your", "we", "they",
	"he", "she", "her", "him", "us", "them",
}

func stopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
