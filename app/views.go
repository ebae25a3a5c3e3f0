package app

import (
	"github.com/clubhive/clubhive-be/model"
	"github.com/clubhive/clubhive-be/util"
)

// Creator is the user shape exposed on topics and replies.
type Creator struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Sign      string `json:"sign"`
	UserGroup int64  `json:"user_group"`
}

func creatorFromUser(user *model.User) *Creator {
	return &Creator{
		Id:        user.Id,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Avatar:    util.Avatar(user.Avatar),
		Sign:      user.Sign,
		UserGroup: user.GroupId,
	}
}

type Paged struct {
	Total int64       `json:"total"`
	Data  interface{} `json:"data"`
}

type TopicView struct {
	*model.Topic
	Creator *Creator `json:"creator"`
}

type MemberView struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	JoinedAt int64  `json:"joinedAt"`
}

type GroupProfile struct {
	Group              *model.Group  `json:"group"`
	TotalTopics        int64         `json:"totalTopics"`
	InGroup            bool          `json:"inGroup"`
	Topics             []*TopicView  `json:"topics"`
	RecentAddedMembers []*MemberView `json:"recentAddedMembers"`
}

type SubReplyView struct {
	Id        int64            `json:"id"`
	Creator   *Creator         `json:"creator"`
	IsFriend  bool             `json:"isFriend"`
	CreatedAt int64            `json:"createdAt"`
	Text      string           `json:"text"`
	State     model.ReplyState `json:"state"`
}

type ReplyView struct {
	SubReplyView
	Replies []SubReplyView `json:"replies"`
}

type TopicDetail struct {
	Id        int64            `json:"id"`
	Group     *model.Group     `json:"group"`
	Creator   *Creator         `json:"creator"`
	Title     string           `json:"title"`
	Text      string           `json:"text"`
	State     model.ReplyState `json:"state"`
	CreatedAt int64            `json:"createdAt"`
	Replies   []ReplyView      `json:"replies"`
}

// BasicReply is the response to a successful reply creation.
type BasicReply struct {
	Id        int64            `json:"id"`
	Creator   *Creator         `json:"creator"`
	CreatedAt int64            `json:"createdAt"`
	Text      string           `json:"text"`
	State     model.ReplyState `json:"state"`
}

// displayableGroup returns a copy with the stored icon reference replaced by
// its display URL.
func displayableGroup(group *model.Group) *model.Group {
	shown := *group
	shown.Icon = util.GroupIcon(group.Icon)
	return &shown
}
