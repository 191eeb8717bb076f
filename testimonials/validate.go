package testimonials

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Denylisted tokens match as plain substrings, not word boundaries: a token
// inside a longer word still rejects.
var badWords = []string{"fuck", "shit", "bitch", "asshole", "cunt", "bastard", "dick", "piss"}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ContainsProfanity(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range badWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// ClampStars forces the rating into [0, 5]. Callers pass 5 for absent or
// non-numeric input.
func ClampStars(stars float64) float64 {
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}
