package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoredUpdateTime_PlainGroupUsesNow(t *testing.T) {
	topic := &Topic{ParentId: 12, CreatedAt: 900000, Replies: 10}
	assert.Equal(t, int64(1000000), ScoredUpdateTime(1000000, topic))
}

func TestScoredUpdateTime_RankedGroupWithoutRepliesUsesNow(t *testing.T) {
	topic := &Topic{ParentId: 364, CreatedAt: 900000, Replies: 0}
	assert.Equal(t, int64(1000000), ScoredUpdateTime(1000000, topic))
}

func TestScoredUpdateTime_RankedGroupDecays(t *testing.T) {
	topic := &Topic{ParentId: 364, CreatedAt: 900000, Replies: 10}

	ageHours := float64(1000000-900000) / 3600
	expected := int64(math.Floor(1000000 - math.Pow(ageHours+0.1, 1.8)/10*200))

	got := ScoredUpdateTime(1000000, topic)
	assert.Equal(t, expected, got)
	assert.Less(t, got, int64(1000000))
}

func TestScoredUpdateTime_NeverExceedsNow(t *testing.T) {
	// A fresh topic has a near-zero penalty; the score must still stay at or
	// below now.
	for _, replies := range []int64{1, 10, 10000} {
		topic := &Topic{ParentId: 364, CreatedAt: 1000000, Replies: replies}
		assert.LessOrEqual(t, ScoredUpdateTime(1000000, topic), int64(1000000))
	}
}

func TestScoredUpdateTime_MoreRepliesDecaySlower(t *testing.T) {
	few := &Topic{ParentId: 364, CreatedAt: 900000, Replies: 2}
	many := &Topic{ParentId: 364, CreatedAt: 900000, Replies: 50}
	assert.Greater(t, ScoredUpdateTime(1000000, many), ScoredUpdateTime(1000000, few))
}
