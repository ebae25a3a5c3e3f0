package model

import "math"

// rankedGroupId is the one high-traffic group whose topics sort by a decayed
// score instead of raw recency. Deliberately a literal special case.
const rankedGroupId = 364

const (
	rankGravity = 1.8
	rankWeight  = 200
)

// ScoredUpdateTime computes the ordering timestamp stored on a topic after a
// new reply at unix time now. Topics sort by recency except in the ranked
// group, where topics that already have replies decay Hacker-News style: the
// age penalty grows superlinearly while reply count slows it down. The result
// never exceeds now, so a topic cannot rank as if posted in the future.
func ScoredUpdateTime(now int64, topic *Topic) int64 {
	if topic.ParentId != rankedGroupId || topic.Replies <= 0 {
		return now
	}

	ageHours := float64(now-topic.CreatedAt) / 3600
	penalty := math.Pow(ageHours+0.1, rankGravity) / float64(topic.Replies) * rankWeight
	scored := int64(math.Floor(float64(now) - penalty))
	if scored > now {
		return now
	}
	return scored
}
