package contact

import (
	"regexp"
	"strings"
	"unicode"
)

const spamScoreThreshold = 4

// spam keyword hits are worth 2 points each
var spamKeywords = []string{
	"viagra", "casino", "lottery", "jackpot", "bitcoin doubler",
	"crypto investment", "seo service", "backlink", "guest post",
	"earn money fast", "work from home", "million dollar", "wire transfer",
	"nigerian prince", "inheritance fund",
}

var linkRegex = regexp.MustCompile(`https?://`)

// CheckSpam scores a message with a few cheap heuristics: known spam
// phrases, too many links, shouting, and a missing sender address.
// Messages scoring at or above the threshold are flagged.
func CheckSpam(m *Message) (score int, isSpam bool) {
	text := strings.ToLower(m.Subject + " " + m.Body)

	for _, keyword := range spamKeywords {
		if strings.Contains(text, keyword) {
			score += 2
		}
	}

	if links := len(linkRegex.FindAllString(text, -1)); links > 2 {
		score += links - 2
	}

	if isShouting(m.Body) {
		score += 2
	}

	if !strings.Contains(m.Email, "@") {
		score += 2
	}

	return score, score >= spamScoreThreshold
}

// isShouting reports whether more than 60% of the letters are upper
// case, short bodies are not penalized.
func isShouting(body string) bool {
	letters, upper := 0, 0
	for _, r := range body {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters < 20 {
		return false
	}
	return float64(upper)/float64(letters) > 0.6
}
