package memory

import (
	"context"
	"errors"
	"testing"

	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/clubhive/clubhive-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsersByIDs_EmptyInput(t *testing.T) {
	store := New()
	store.AddUser(model.User{Id: 1})

	users, err := store.GetUsersByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetFriendIDs_AnonymousOwner(t *testing.T) {
	store := New()
	store.AddFriend(1, 2)

	friends, err := store.GetFriendIDs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestListTopics_FiltersDisplayAndOrdersByLastpost(t *testing.T) {
	store := New()
	store.AddTopic(model.Topic{Id: 1, ParentId: 7, UpdatedAt: 100, Display: model.DisplayNormal},
		model.Post{CreatorId: 1, Content: "body"})
	store.AddTopic(model.Topic{Id: 2, ParentId: 7, UpdatedAt: 300, Display: model.DisplayReview},
		model.Post{CreatorId: 1, Content: "body"})
	store.AddTopic(model.Topic{Id: 3, ParentId: 7, UpdatedAt: 200, Display: model.DisplayNormal},
		model.Post{CreatorId: 1, Content: "body"})

	total, topics, err := store.ListTopics(context.Background(), 7,
		[]model.TopicDisplay{model.DisplayNormal}, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, topics, 2)
	assert.Equal(t, int64(3), topics[0].Id)
	assert.Equal(t, int64(1), topics[1].Id)

	total, topics, err = store.ListTopics(context.Background(), 7,
		[]model.TopicDisplay{model.DisplayNormal, model.DisplayReview}, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(2), topics[0].Id)
}

func TestListTopics_PaginationReturnsUnpagedTotal(t *testing.T) {
	store := New()
	for i := int64(1); i <= 5; i++ {
		store.AddTopic(model.Topic{ParentId: 7, UpdatedAt: i, Display: model.DisplayNormal},
			model.Post{Content: "body"})
	}

	total, topics, err := store.ListTopics(context.Background(), 7,
		[]model.TopicDisplay{model.DisplayNormal}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, topics, 2)
}

func TestGetTopicDetails_AssemblesTree(t *testing.T) {
	store := New()
	store.AddTopic(model.Topic{Id: 1, ParentId: 7, CreatorId: 9, Title: "hello"},
		model.Post{Id: 10, CreatorId: 9, Content: "body"},
		model.Post{Id: 11, CreatorId: 8, Content: "top-level", Related: 0},
		model.Post{Id: 12, CreatorId: 7, Content: "nested", Related: 11},
	)

	details, err := store.GetTopicDetails(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "body", details.Text)
	require.Len(t, details.Replies, 1)
	assert.Equal(t, int64(11), details.Replies[0].Id)
	require.Len(t, details.Replies[0].Replies, 1)
	assert.Equal(t, int64(12), details.Replies[0].Replies[0].Id)
}

func TestGetTopicDetails_UnknownTopicIsNil(t *testing.T) {
	store := New()

	details, err := store.GetTopicDetails(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestGetTopicDetails_TopicWithoutBodyIsIntegrityFault(t *testing.T) {
	store := New()
	store.AddTopic(model.Topic{Id: 1, ParentId: 7})

	_, err := store.GetTopicDetails(context.Background(), 1)
	assert.Error(t, err)
}

func TestCreateTopic_InsertsTopicAndBody(t *testing.T) {
	store := New()

	id, err := store.CreateTopic(context.Background(), &appDb.CreateTopic{
		GroupId: 7,
		UserId:  9,
		Title:   "hello",
		Content: "body",
		Display: model.DisplayNormal,
		State:   model.ReplyStateNormal,
		Now:     1000,
	})
	require.NoError(t, err)

	details, err := store.GetTopicDetails(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "body", details.Text)
	assert.Empty(t, details.Replies)
	assert.Equal(t, int64(0), details.Topic.Replies)
}

func TestCreateReply_AbortLeavesNothingApplied(t *testing.T) {
	store := New()
	topicId := store.AddTopic(model.Topic{ParentId: 7, Replies: 1, UpdatedAt: 500},
		model.Post{Content: "body"},
		model.Post{Content: "first reply"},
	)

	store.replyFault = errors.New("connection reset mid-transaction")
	_, err := store.CreateReply(context.Background(), &appDb.CreateReply{
		TopicId: topicId,
		UserId:  9,
		Content: "lost reply",
		Now:     1000,
	})
	require.Error(t, err)

	// Neither the post insert nor the counter/lastpost update may survive.
	topic, err := store.GetTopicByID(context.Background(), topicId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), topic.Replies)
	assert.Equal(t, int64(500), topic.UpdatedAt)

	details, err := store.GetTopicDetails(context.Background(), topicId)
	require.NoError(t, err)
	require.Len(t, details.Replies, 1)
	assert.Equal(t, "first reply", details.Replies[0].Content)

	// The same request succeeds once the fault clears.
	store.replyFault = nil
	post, err := store.CreateReply(context.Background(), &appDb.CreateReply{
		TopicId: topicId,
		UserId:  9,
		Content: "kept reply",
		Now:     1000,
	})
	require.NoError(t, err)
	assert.NotZero(t, post.Id)

	topic, err = store.GetTopicByID(context.Background(), topicId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), topic.Replies)
	assert.Equal(t, int64(1000), topic.UpdatedAt)
}

func TestListGroupMembers_FilterAndPage(t *testing.T) {
	store := New()
	store.AddGroupMember(model.GroupMember{GroupId: 7, UserId: 1, Moderator: true, JoinedAt: 10})
	store.AddGroupMember(model.GroupMember{GroupId: 7, UserId: 2, JoinedAt: 30})
	store.AddGroupMember(model.GroupMember{GroupId: 7, UserId: 3, JoinedAt: 20})

	total, members, err := store.ListGroupMembers(context.Background(), 7, model.MemberFilterMod, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, members, 1)
	assert.Equal(t, int64(1), members[0].UserId)

	total, members, err = store.ListGroupMembers(context.Background(), 7, model.MemberFilterAll, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, members, 2)
	// Most recently joined first.
	assert.Equal(t, int64(2), members[0].UserId)
	assert.Equal(t, int64(3), members[1].UserId)
}
