package auth

import "github.com/clubhive/clubhive-be/model"

// ListTopicDisplays returns the topic display states this viewer may list.
// The result is pushed into the repository query; callers never load
// unfiltered topics and trim afterwards.
func ListTopicDisplays(a *Auth) []model.TopicDisplay {
	if a.Login && a.Permission.ManageTopicState {
		return []model.TopicDisplay{model.DisplayBan, model.DisplayNormal, model.DisplayReview}
	}
	return []model.TopicDisplay{model.DisplayNormal}
}

// CanViewDeleted reports whether the viewer sees user- or admin-deleted posts.
func CanViewDeleted(a *Auth) bool {
	return a.Login && a.Permission.ManageTopicState
}

// FilterReplies drops the replies this viewer must not see from an assembled
// thread. A hidden top-level reply takes its nested replies with it.
func FilterReplies(a *Auth, replies []model.Reply) []model.Reply {
	privileged := CanViewDeleted(a)

	visible := make([]model.Reply, 0, len(replies))
	for _, reply := range replies {
		if !reply.State.Visible(privileged) {
			continue
		}
		sub := make([]model.SubReply, 0, len(reply.Replies))
		for _, s := range reply.Replies {
			if s.State.Visible(privileged) {
				sub = append(sub, s)
			}
		}
		reply.Replies = sub
		visible = append(visible, reply)
	}
	return visible
}
