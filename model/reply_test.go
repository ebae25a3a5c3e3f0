package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleReplies_PartitionsByParent(t *testing.T) {
	posts := []Post{
		{Id: 2, TopicId: 1, CreatorId: 10, Content: "first", Related: 0},
		{Id: 3, TopicId: 1, CreatorId: 11, Content: "nested under 2", Related: 2},
		{Id: 4, TopicId: 1, CreatorId: 12, Content: "second", Related: 0},
		{Id: 5, TopicId: 1, CreatorId: 13, Content: "also under 2", Related: 2},
	}

	replies := AssembleReplies(posts)
	require.Len(t, replies, 2)

	assert.Equal(t, int64(2), replies[0].Id)
	require.Len(t, replies[0].Replies, 2)
	assert.Equal(t, int64(3), replies[0].Replies[0].Id)
	assert.Equal(t, int64(5), replies[0].Replies[1].Id)
	assert.Equal(t, int64(2), replies[0].Replies[0].RepliedTo)

	assert.Equal(t, int64(4), replies[1].Id)
	assert.Empty(t, replies[1].Replies)
}

func TestAssembleReplies_KeepsInsertionOrder(t *testing.T) {
	posts := []Post{
		{Id: 7, Related: 0},
		{Id: 8, Related: 7},
		{Id: 9, Related: 0},
		{Id: 10, Related: 9},
		{Id: 11, Related: 7},
	}

	replies := AssembleReplies(posts)
	require.Len(t, replies, 2)
	assert.Equal(t, []int64{8, 11}, subReplyIds(replies[0]))
	assert.Equal(t, []int64{10}, subReplyIds(replies[1]))
}

func TestAssembleReplies_NestedParentsAreTopLevel(t *testing.T) {
	posts := []Post{
		{Id: 2, Related: 0},
		{Id: 3, Related: 2},
		{Id: 4, Related: 2},
	}

	for _, reply := range AssembleReplies(posts) {
		assert.Equal(t, int64(0), reply.RepliedTo)
		for _, sub := range reply.Replies {
			assert.Equal(t, reply.Id, sub.RepliedTo)
		}
	}
}

func TestAssembleReplies_Empty(t *testing.T) {
	assert.Empty(t, AssembleReplies(nil))
}

func subReplyIds(reply Reply) []int64 {
	ids := make([]int64, len(reply.Replies))
	for i, sub := range reply.Replies {
		ids[i] = sub.Id
	}
	return ids
}
