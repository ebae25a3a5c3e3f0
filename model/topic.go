package model

// TopicDisplay is the moderation-visibility classification of a topic,
// distinct from its ReplyState.
type TopicDisplay int

const (
	DisplayBan    TopicDisplay = 0
	DisplayNormal TopicDisplay = 1
	DisplayReview TopicDisplay = 2
)

// ReplyState is the administrative lifecycle state shared by topics and posts.
type ReplyState int

const (
	ReplyStateNormal           ReplyState = 0
	ReplyStateAdminCloseTopic  ReplyState = 1
	ReplyStateAdminReopen      ReplyState = 2
	ReplyStateAdminPin         ReplyState = 3
	ReplyStateAdminMerge       ReplyState = 4
	ReplyStateAdminSilentTopic ReplyState = 5
	ReplyStateUserDelete       ReplyState = 6
	ReplyStateAdminDelete      ReplyState = 7
)

// Visible reports whether a post in this state appears in a thread view.
// Deleted posts are only shown to privileged viewers.
func (s ReplyState) Visible(privileged bool) bool {
	switch s {
	case ReplyStateUserDelete, ReplyStateAdminDelete:
		return privileged
	}
	return true
}

// Repliable reports whether a topic or post in this state accepts new replies.
func (s ReplyState) Repliable() bool {
	switch s {
	case ReplyStateNormal, ReplyStateAdminReopen, ReplyStateAdminPin:
		return true
	}
	return false
}

// EligibleReplyTarget reports whether a post in this state can be the target of
// a nested reply. Admin action markers are rendered in the thread but are not
// real posts, so they can never be replied to.
func (s ReplyState) EligibleReplyTarget() bool {
	switch s {
	case ReplyStateAdminCloseTopic, ReplyStateAdminReopen, ReplyStateAdminSilentTopic:
		return false
	}
	return true
}

type TopicParentType string

const (
	TopicParentGroup   TopicParentType = "group"
	TopicParentSubject TopicParentType = "subject"
)

type Topic struct {
	Id        int64        `db:"id" json:"id"`
	ParentId  int64        `db:"gid" json:"parentID"`
	CreatorId int64        `db:"uid" json:"-"`
	Title     string       `db:"title" json:"title"`
	CreatedAt int64        `db:"dateline" json:"createdAt"`
	// UpdatedAt is the ordering timestamp ("lastpost"). It usually tracks the
	// newest reply but can be decayed by the ranking formula.
	UpdatedAt  int64        `db:"lastpost" json:"updatedAt"`
	Replies    int64        `db:"replies" json:"repliesCount"`
	State      ReplyState   `db:"state" json:"state"`
	Display    TopicDisplay `db:"display" json:"-"`
}
