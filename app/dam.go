package app

import (
	"regexp"
	"strings"
)

// ReviewFilter classifies user-submitted text that needs moderator review
// before it becomes publicly visible.
type ReviewFilter interface {
	NeedReview(text string) bool
}

// WordFilter flags text containing any of a configured word list.
type WordFilter struct {
	pattern *regexp.Regexp
}

func NewWordFilter(words []string) *WordFilter {
	quoted := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word != "" {
			quoted = append(quoted, regexp.QuoteMeta(word))
		}
	}
	if len(quoted) == 0 {
		return &WordFilter{}
	}
	return &WordFilter{
		pattern: regexp.MustCompile("(?i)" + strings.Join(quoted, "|")),
	}
}

func (wf *WordFilter) NeedReview(text string) bool {
	return wf.pattern != nil && wf.pattern.MatchString(text)
}
