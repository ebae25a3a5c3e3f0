package db

import (
	"context"

	"github.com/clubhive/clubhive-be/model"
)

type Database interface {
	AuthDatabase
	UserDatabase
	GroupDatabase
	SubjectDatabase
	TopicDatabase
	NotifyDatabase
	Close() error
}

// AuthDatabase backs credential resolution.
type AuthDatabase interface {
	// GetAccessToken returns the token row matching the credential if it has
	// not expired at now, nil otherwise.
	GetAccessToken(ctx context.Context, token string, now int64) (*model.AccessToken, error)
	// GetPermissionBlob returns the serialized permission bag for a role id,
	// nil if the role has no bag.
	GetPermissionBlob(ctx context.Context, roleId int64) ([]byte, error)
}

// UserDatabase is the batch-oriented user/friend directory. Batch lookups take
// a deduplicated id list and return a map keyed by id; a missing key means the
// row does not exist.
type UserDatabase interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*model.User, error)
	// GetFriendIDs returns the ids befriended by ownerId. A zero ownerId
	// (anonymous viewer) yields an empty map without querying.
	GetFriendIDs(ctx context.Context, ownerId int64) (map[int64]bool, error)
}

type GroupDatabase interface {
	GetGroupByName(ctx context.Context, name string) (*model.Group, error)
	GetGroupByID(ctx context.Context, id int64) (*model.Group, error)
	IsMemberOfGroup(ctx context.Context, groupId, userId int64) (bool, error)
	ListGroupMembers(ctx context.Context, groupId int64, filter model.MemberFilter, limit, offset int) (total int64, members []*model.GroupMember, err error)
}

type SubjectDatabase interface {
	GetSubjectByID(ctx context.Context, id int64) (*model.Subject, error)
}

type CreateTopic struct {
	GroupId int64
	UserId  int64
	Title   string
	Content string
	Display model.TopicDisplay
	State   model.ReplyState
	Now     int64
}

type CreateReply struct {
	TopicId int64
	UserId  int64
	Content string
	// RelatedId is 0 for a top-level reply or the id of the top-level reply
	// the new post nests under. Resolved by the workflow, never by callers.
	RelatedId int64
	State     model.ReplyState
	Now       int64
}

type TopicDatabase interface {
	// ListTopics returns one page of a group's topics ordered by lastpost
	// descending, restricted to the given display states, plus the unpaged
	// total for the same filter.
	ListTopics(ctx context.Context, groupId int64, displays []model.TopicDisplay, limit, offset int) (total int64, topics []*model.Topic, err error)
	GetTopicByID(ctx context.Context, id int64) (*model.Topic, error)
	// GetTopicDetails assembles one topic with its body text and two-level
	// reply tree. Returns nil for an unknown topic id; a known topic without
	// its body post is a data-integrity fault.
	GetTopicDetails(ctx context.Context, id int64) (*model.TopicDetails, error)
	// CreateTopic inserts the topic row and its body post as one transaction.
	CreateTopic(ctx context.Context, req *CreateTopic) (topicId int64, err error)
	// CreateReply inserts the post, increments the topic reply counter and,
	// unless the topic is admin-silenced, moves its ordering timestamp to the
	// scored update time. All writes commit together or not at all.
	CreateReply(ctx context.Context, req *CreateReply) (*model.Post, error)
}

type NotifyType int

const (
	NotifyGroupTopicReply NotifyType = 1
	NotifyGroupPostReply  NotifyType = 2
)

type CreateNotification struct {
	DestUserId   int64
	SourceUserId int64
	Type         NotifyType
	PostId       int64
	TopicId      int64
	Title        string
	Timestamp    int64
}

// NotifyDatabase is the notification sink. Emission is best effort: callers
// log failures and move on.
type NotifyDatabase interface {
	CreateNotification(ctx context.Context, req *CreateNotification) error
}
