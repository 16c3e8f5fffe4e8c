// Package videos holds the static wellness video catalog.
package videos

// Video is one suggested wellness video.
type Video struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"video_id"`
	YouTubeLink string `json:"youtube_link"`
	Category    string `json:"category"`
}

var catalog = []Video{
	{
		ID:          2,
		Title:       "Morning Yoga for Beginners",
		Description: "Gentle yoga stretches to start your day positively.",
		VideoID:     "VaoV1PrYft4",
		YouTubeLink: "https://www.youtube.com/watch?v=VaoV1PrYft4",
		Category:    "yoga",
	},
	{
		ID:          3,
		Title:       "Deep Sleep Relaxation Music",
		Description: "Calming music to help you fall asleep faster.",
		VideoID:     "1ZYbU82GVz4",
		YouTubeLink: "https://www.youtube.com/watch?v=1ZYbU82GVz4",
		Category:    "sleep",
	},
	{
		ID:          4,
		Title:       "10 Minute Meditation for Stress Relief",
		Description: "Pranayama for relaxation.",
		VideoID:     "uNmKzlh55Fo",
		YouTubeLink: "https://youtu.be/uNmKzlh55Fo",
		Category:    "stress",
	},
	{
		ID:          5,
		Title:       "REACH",
		Description: "Reach to the state of Happiness.",
		VideoID:     "zzIMNr49-j0",
		YouTubeLink: "https://youtu.be/zzIMNr49-j0",
		Category:    "depression",
	},
}

// All returns the full catalog.
func All() []Video {
	return append([]Video(nil), catalog...)
}

// ByCategory returns the videos in the given category. Unknown categories
// yield an empty (non-nil) slice.
func ByCategory(category string) []Video {
	filtered := make([]Video, 0)
	for _, v := range catalog {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
