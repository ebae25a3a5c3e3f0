package model

type Group struct {
	Id          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Nsfw        bool   `db:"nsfw" json:"nsfw"`
	// Accessible marks a publicly joinable group. Private groups require
	// membership before posting or listing topics.
	Accessible   bool   `db:"accessible" json:"-"`
	TotalMembers int64  `db:"member_count" json:"totalMembers"`
	CreatedAt    int64  `db:"builddate" json:"createdAt"`
	Icon         string `db:"icon" json:"icon"`
}

type GroupMember struct {
	GroupId   int64 `db:"gid" json:"-"`
	UserId    int64 `db:"uid" json:"id"`
	Moderator bool  `db:"moderator" json:"-"`
	JoinedAt  int64 `db:"dateline" json:"joinedAt"`
}

// MemberFilter narrows a member listing to moderators or normal members.
type MemberFilter string

const (
	MemberFilterAll    MemberFilter = "all"
	MemberFilterMod    MemberFilter = "mod"
	MemberFilterNormal MemberFilter = "normal"
)

func ParseMemberFilter(val string) (MemberFilter, bool) {
	switch MemberFilter(val) {
	case MemberFilterAll, MemberFilterMod, MemberFilterNormal:
		return MemberFilter(val), true
	case "":
		return MemberFilterAll, true
	}
	return "", false
}
