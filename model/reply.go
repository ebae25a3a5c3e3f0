package model

// Post is a group_post storage row. The first post of a topic is the topic
// body; Related points at the top-level reply a nested reply hangs under, or 0.
type Post struct {
	Id        int64      `db:"id" json:"id"`
	TopicId   int64      `db:"tid" json:"-"`
	CreatorId int64      `db:"uid" json:"-"`
	Content   string     `db:"content" json:"text"`
	CreatedAt int64      `db:"dateline" json:"createdAt"`
	State     ReplyState `db:"state" json:"state"`
	Related   int64      `db:"related" json:"-"`
}

// SubReply is a second-level reply in an assembled thread.
type SubReply struct {
	Id        int64      `json:"id"`
	CreatorId int64      `json:"-"`
	Content   string     `json:"text"`
	CreatedAt int64      `json:"createdAt"`
	State     ReplyState `json:"state"`
	// RepliedTo is the id of the top-level reply this nests under.
	RepliedTo int64 `json:"-"`
}

// Reply is a top-level reply carrying its nested replies in insertion order.
type Reply struct {
	SubReply
	Replies []SubReply `json:"replies"`
}

// TopicDetails is one topic plus its body text and assembled reply tree.
type TopicDetails struct {
	Topic
	Text    string  `json:"text"`
	Replies []Reply `json:"replies"`
}

// AssembleReplies turns the flat, id-ordered post list of a topic (body post
// excluded) into the two-level reply tree. Nesting depth is fixed at two, so a
// single adjacency pre-pass replaces recursive tree building.
func AssembleReplies(posts []Post) []Reply {
	nested := make(map[int64][]SubReply)
	for _, p := range posts {
		if p.Related == 0 {
			continue
		}
		nested[p.Related] = append(nested[p.Related], subReplyFromPost(p))
	}

	replies := make([]Reply, 0, len(posts)-len(nested))
	for _, p := range posts {
		if p.Related != 0 {
			continue
		}
		sub := nested[p.Id]
		if sub == nil {
			sub = []SubReply{}
		}
		replies = append(replies, Reply{
			SubReply: subReplyFromPost(p),
			Replies:  sub,
		})
	}
	return replies
}

func subReplyFromPost(p Post) SubReply {
	return SubReply{
		Id:        p.Id,
		CreatorId: p.CreatorId,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		State:     p.State,
		RepliedTo: p.Related,
	}
}
