// Package streak implements daily visit streak tracking with badge awards
// and streak freezes.
package streak

import "time"

// Badge is a streak milestone. Reaching Days consecutive visits awards the
// badge once and grants Freeze streak freezes.
type Badge struct {
	Days   int
	Name   string
	Freeze int
}

// Badges is the milestone ladder, in ascending order.
var Badges = []Badge{
	{Days: 3, Name: "🌱 Starter", Freeze: 0},
	{Days: 7, Name: "💪 Consistent Visitor", Freeze: 1},
	{Days: 14, Name: "🧠 Habit Builder", Freeze: 2},
	{Days: 30, Name: "🏆 Wellnest Regular", Freeze: 3},
}

// State is a user's streak counters. A zero LastVisit means no prior visit.
type State struct {
	Current         int       `json:"current"`
	Longest         int       `json:"longest"`
	LastVisit       time.Time `json:"lastVisit"`
	FreezeAvailable int       `json:"freezeAvailable"`
}

// UpdateVisit records a visit at now and returns the new state and badge
// list. A one-day gap extends the streak; a longer gap consumes a freeze if
// one is available, otherwise the streak resets. Same-day repeat visits
// leave the count unchanged. Already-held badges are never re-awarded.
func UpdateVisit(s State, badges []string, now time.Time) (State, []string) {
	held := make(map[string]bool, len(badges))
	for _, b := range badges {
		held[b] = true
	}

	switch {
	case s.LastVisit.IsZero():
		s.Current = 1
	default:
		gap := daysBetween(s.LastVisit, now)
		switch {
		case gap == 1:
			s.Current++
		case gap > 1:
			if s.FreezeAvailable > 0 {
				s.FreezeAvailable--
			} else {
				s.Current = 1
			}
		}
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastVisit = now

	updated := append([]string(nil), badges...)
	for _, badge := range Badges {
		if s.Current >= badge.Days && !held[badge.Name] {
			updated = append(updated, badge.Name)
			held[badge.Name] = true
			s.FreezeAvailable += badge.Freeze
		}
	}
	return s, updated
}

// daysBetween returns whole calendar days from a to b in UTC.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
