package auth

import (
	"testing"

	"github.com/clubhive/clubhive-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTopicDisplays(t *testing.T) {
	assert.Equal(t,
		[]model.TopicDisplay{model.DisplayNormal},
		ListTopicDisplays(&Anonymous))

	assert.Equal(t,
		[]model.TopicDisplay{model.DisplayNormal},
		ListTopicDisplays(&Auth{Login: true, UserID: 1}))

	assert.Equal(t,
		[]model.TopicDisplay{model.DisplayBan, model.DisplayNormal, model.DisplayReview},
		ListTopicDisplays(&Auth{Login: true, UserID: 1, Permission: Permission{ManageTopicState: true}}))
}

func TestFilterReplies_HidesDeletedFromUnprivileged(t *testing.T) {
	replies := []model.Reply{
		{
			SubReply: model.SubReply{Id: 2, State: model.ReplyStateNormal},
			Replies: []model.SubReply{
				{Id: 3, State: model.ReplyStateUserDelete, RepliedTo: 2},
				{Id: 4, State: model.ReplyStateNormal, RepliedTo: 2},
			},
		},
		{SubReply: model.SubReply{Id: 5, State: model.ReplyStateAdminDelete}, Replies: []model.SubReply{}},
		{SubReply: model.SubReply{Id: 6, State: model.ReplyStateAdminCloseTopic}, Replies: []model.SubReply{}},
	}

	visible := FilterReplies(&Anonymous, replies)
	require.Len(t, visible, 2)
	assert.Equal(t, int64(2), visible[0].Id)
	require.Len(t, visible[0].Replies, 1)
	assert.Equal(t, int64(4), visible[0].Replies[0].Id)
	// Admin action markers stay visible even though they aren't repliable.
	assert.Equal(t, int64(6), visible[1].Id)
}

func TestFilterReplies_ModeratorSeesEverything(t *testing.T) {
	replies := []model.Reply{
		{SubReply: model.SubReply{Id: 2, State: model.ReplyStateUserDelete}, Replies: []model.SubReply{}},
		{SubReply: model.SubReply{Id: 3, State: model.ReplyStateAdminDelete}, Replies: []model.SubReply{}},
	}

	mod := &Auth{Login: true, Permission: Permission{ManageTopicState: true}}
	assert.Len(t, FilterReplies(mod, replies), 2)
}

func TestFilterReplies_HiddenParentTakesSubRepliesAlong(t *testing.T) {
	replies := []model.Reply{
		{
			SubReply: model.SubReply{Id: 2, State: model.ReplyStateAdminDelete},
			Replies: []model.SubReply{
				{Id: 3, State: model.ReplyStateNormal, RepliedTo: 2},
			},
		},
	}

	assert.Empty(t, FilterReplies(&Anonymous, replies))
}
