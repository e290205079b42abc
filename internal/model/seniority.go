package model

import (
	"regexp"
	"strings"
)

// Ordered most senior first; the first matching pattern wins.
var seniorityPatterns = []struct {
	rank Seniority
	re   *regexp.Regexp
}{
	{SeniorityExecutive, regexp.MustCompile(`\b(ceo|cfo|cto|coo|cmo|cpo|chief|founder|co-founder|president|owner|partner|managing director)\b`)},
	{SenioritySenior, regexp.MustCompile(`\b(vp|vice president|svp|evp|head of|director|general manager)\b`)},
	{SeniorityPeer, regexp.MustCompile(`\b(manager|lead|senior|principal|staff|architect)\b`)},
	{SeniorityJunior, regexp.MustCompile(`\b(associate|analyst|coordinator|specialist|assistant|intern|junior|entry|trainee)\b`)},
}

// InferSeniority guesses a seniority rank from a free-text job title. It is
// total: empty or unrecognized input returns SeniorityUnset.
func InferSeniority(title string) Seniority {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return SeniorityUnset
	}
	for _, p := range seniorityPatterns {
		if p.re.MatchString(t) {
			return p.rank
		}
	}
	return SeniorityUnset
}
