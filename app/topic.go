package app

import (
	"context"
	"log"
	"time"

	"github.com/clubhive/clubhive-be/apperr"
	"github.com/clubhive/clubhive-be/auth"
	"github.com/clubhive/clubhive-be/config"
	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/clubhive/clubhive-be/model"
	"github.com/clubhive/clubhive-be/util"
)

type TopicController struct {
	db     appDb.Database
	filter ReviewFilter
	now    func() time.Time
}

func NewTopicController(database appDb.Database, filter ReviewFilter) *TopicController {
	return &TopicController{
		db:     database,
		filter: filter,
		now:    time.Now,
	}
}

// GetGroupProfile assembles the group landing page: the group itself, one page
// of its topics filtered to what the viewer may list, and the most recently
// joined members.
func (tc *TopicController) GetGroupProfile(ctx context.Context, a *auth.Auth, groupName string, limit, offset int) (*GroupProfile, error) {
	group, err := tc.db.GetGroupByName(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("group %v", groupName)
	}

	total, topics, err := tc.db.ListTopics(ctx, group.Id, auth.ListTopicDisplays(a), limit, offset)
	if err != nil {
		return nil, err
	}
	topicViews, err := tc.addCreators(ctx, topics)
	if err != nil {
		return nil, err
	}

	inGroup := false
	if a.Login {
		if inGroup, err = tc.db.IsMemberOfGroup(ctx, group.Id, a.UserID); err != nil {
			return nil, err
		}
	}

	_, recent, err := tc.listMembers(ctx, group.Id, model.MemberFilterAll, config.RecentMemberCount, 0)
	if err != nil {
		return nil, err
	}

	return &GroupProfile{
		Group:              displayableGroup(group),
		TotalTopics:        total,
		InGroup:            inGroup,
		Topics:             topicViews,
		RecentAddedMembers: recent,
	}, nil
}

// ListGroupTopics returns one page of a group's topics. Private groups only
// list for members.
func (tc *TopicController) ListGroupTopics(ctx context.Context, a *auth.Auth, groupName string, limit, offset int) (*Paged, error) {
	group, err := tc.db.GetGroupByName(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("group %v", groupName)
	}

	if err := tc.checkGroupAccess(ctx, a, group); err != nil {
		return nil, err
	}

	total, topics, err := tc.db.ListTopics(ctx, group.Id, auth.ListTopicDisplays(a), limit, offset)
	if err != nil {
		return nil, err
	}
	topicViews, err := tc.addCreators(ctx, topics)
	if err != nil {
		return nil, err
	}
	return &Paged{Total: total, Data: topicViews}, nil
}

// ListSubjectTopics recognizes subject-scoped topic listing but does not
// support it yet; the distinct Unimplemented error lets clients detect the
// missing feature. The subject itself is still validated (and hidden from
// viewers the NSFW gate excludes).
func (tc *TopicController) ListSubjectTopics(ctx context.Context, a *auth.Auth, subjectId int64, limit, offset int) (*Paged, error) {
	subject, err := tc.db.GetSubjectByID(ctx, subjectId)
	if err != nil {
		return nil, err
	}
	if subject == nil || (subject.Nsfw && !a.AllowNsfw) {
		return nil, apperr.NotFound("subject %v", subjectId)
	}
	return nil, apperr.Unimplemented("topic type %v", model.TopicParentSubject)
}

func (tc *TopicController) ListGroupMembers(ctx context.Context, groupName string, filter model.MemberFilter, limit, offset int) (*Paged, error) {
	group, err := tc.db.GetGroupByName(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("group %v", groupName)
	}

	total, members, err := tc.listMembers(ctx, group.Id, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return &Paged{Total: total, Data: members}, nil
}

// GetTopicDetails assembles a thread view for one viewer: the reply tree with
// states the viewer must not see removed, creators attached and friendship
// annotated relative to the viewer.
func (tc *TopicController) GetTopicDetails(ctx context.Context, a *auth.Auth, topicId int64) (*TopicDetail, error) {
	details, err := tc.db.GetTopicDetails(ctx, topicId)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperr.NotFound("topic %v", topicId)
	}

	group, err := tc.db.GetGroupByID(ctx, details.ParentId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.DataIntegrity("group %v of topic %v", details.ParentId, topicId)
	}

	replies := auth.FilterReplies(a, details.Replies)

	userIds := []int64{details.CreatorId}
	for _, reply := range replies {
		userIds = append(userIds, reply.CreatorId)
		for _, sub := range reply.Replies {
			userIds = append(userIds, sub.CreatorId)
		}
	}
	users, err := tc.db.GetUsersByIDs(ctx, userIds)
	if err != nil {
		return nil, err
	}
	friends, err := tc.db.GetFriendIDs(ctx, a.UserID)
	if err != nil {
		return nil, err
	}

	creator, err := lookupCreator(users, details.CreatorId)
	if err != nil {
		return nil, err
	}

	replyViews := make([]ReplyView, 0, len(replies))
	for _, reply := range replies {
		view, err := subReplyView(users, friends, reply.SubReply)
		if err != nil {
			return nil, err
		}
		subViews := make([]SubReplyView, 0, len(reply.Replies))
		for _, sub := range reply.Replies {
			subView, err := subReplyView(users, friends, sub)
			if err != nil {
				return nil, err
			}
			subViews = append(subViews, subView)
		}
		replyViews = append(replyViews, ReplyView{SubReplyView: view, Replies: subViews})
	}

	return &TopicDetail{
		Id:        details.Id,
		Group:     displayableGroup(group),
		Creator:   creator,
		Title:     details.Title,
		Text:      details.Text,
		State:     details.State,
		CreatedAt: details.CreatedAt,
		Replies:   replyViews,
	}, nil
}

// CreateTopic creates a topic plus its body post. Content flagged by the
// review filter still persists, but under the Review display state so only
// moderators list it until cleared.
func (tc *TopicController) CreateTopic(ctx context.Context, a *auth.Auth, groupName, title, content string) (int64, error) {
	if a.Permission.BanPost {
		return 0, apperr.NotAllowed("create topic")
	}

	group, err := tc.db.GetGroupByName(ctx, groupName)
	if err != nil {
		return 0, err
	}
	if group == nil {
		return 0, apperr.NotFound("group %v", groupName)
	}

	if err := tc.checkGroupAccess(ctx, a, group); err != nil {
		return 0, err
	}

	display := model.DisplayNormal
	if tc.filter.NeedReview(title) || tc.filter.NeedReview(content) {
		display = model.DisplayReview
	}

	return tc.db.CreateTopic(ctx, &appDb.CreateTopic{
		GroupId: group.Id,
		UserId:  a.UserID,
		Title:   util.XSSSanitize(title),
		Content: util.XSSSanitize(content),
		Display: display,
		State:   model.ReplyStateNormal,
		Now:     tc.now().Unix(),
	})
}

// CreateReply appends a reply to a topic. A nonzero replyTo nests the new
// reply under the target's top-level ancestor, capping depth at two no matter
// how deep the requested chain was.
func (tc *TopicController) CreateReply(ctx context.Context, a *auth.Auth, topicId int64, content string, replyTo int64) (*BasicReply, error) {
	if a.Permission.BanPost {
		return nil, apperr.NotAllowed("create reply")
	}

	details, err := tc.db.GetTopicDetails(ctx, topicId)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperr.NotFound("topic %v", topicId)
	}
	if details.State == model.ReplyStateAdminCloseTopic {
		return nil, apperr.NotAllowed("reply to a closed topic")
	}

	relatedId := int64(0)
	destUserId := details.CreatorId
	if replyTo != 0 {
		replied, ok := findReplyTarget(details.Replies, replyTo)
		if !ok {
			return nil, apperr.NotFound("parent post %v", replyTo)
		}
		destUserId = replied.CreatorId
		if replied.RepliedTo != 0 {
			relatedId = replied.RepliedTo
		} else {
			relatedId = replied.Id
		}
	}

	group, err := tc.db.GetGroupByID(ctx, details.ParentId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.DataIntegrity("group %v of topic %v", details.ParentId, topicId)
	}
	if err := tc.checkGroupAccess(ctx, a, group); err != nil {
		return nil, err
	}

	post, err := tc.db.CreateReply(ctx, &appDb.CreateReply{
		TopicId:   topicId,
		UserId:    a.UserID,
		Content:   util.XSSSanitize(content),
		RelatedId: relatedId,
		State:     model.ReplyStateNormal,
		Now:       tc.now().Unix(),
	})
	if err != nil {
		return nil, err
	}

	notifyType := appDb.NotifyGroupTopicReply
	if replyTo != 0 {
		notifyType = appDb.NotifyGroupPostReply
	}
	// Best effort: a lost notification never rolls back the reply.
	if err := tc.db.CreateNotification(ctx, &appDb.CreateNotification{
		DestUserId:   destUserId,
		SourceUserId: a.UserID,
		Type:         notifyType,
		PostId:       post.Id,
		TopicId:      details.Id,
		Title:        details.Title,
		Timestamp:    post.CreatedAt,
	}); err != nil {
		log.Println("failed to create notification", err)
	}

	creator, err := tc.db.GetUserByID(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, apperr.DataIntegrity("user %v", a.UserID)
	}

	return &BasicReply{
		Id:        post.Id,
		Creator:   creatorFromUser(creator),
		CreatedAt: post.CreatedAt,
		Text:      post.Content,
		State:     post.State,
	}, nil
}

// findReplyTarget flattens the thread into the set of posts that may be
// replied to. Top-level replies carrying admin action markers are excluded
// along with their nested replies.
func findReplyTarget(replies []model.Reply, replyTo int64) (model.SubReply, bool) {
	for _, reply := range replies {
		if !reply.State.EligibleReplyTarget() {
			continue
		}
		if reply.Id == replyTo {
			return reply.SubReply, true
		}
		for _, sub := range reply.Replies {
			if sub.Id == replyTo {
				return sub, true
			}
		}
	}
	return model.SubReply{}, false
}

func (tc *TopicController) checkGroupAccess(ctx context.Context, a *auth.Auth, group *model.Group) error {
	if group.Accessible {
		return nil
	}
	member, err := tc.db.IsMemberOfGroup(ctx, group.Id, a.UserID)
	if err != nil {
		return err
	}
	if !member {
		return apperr.NotJoinPrivateGroup(group.Name)
	}
	return nil
}

func (tc *TopicController) addCreators(ctx context.Context, topics []*model.Topic) ([]*TopicView, error) {
	userIds := make([]int64, len(topics))
	for i, topic := range topics {
		userIds[i] = topic.CreatorId
	}
	users, err := tc.db.GetUsersByIDs(ctx, userIds)
	if err != nil {
		return nil, err
	}

	views := make([]*TopicView, len(topics))
	for i, topic := range topics {
		creator, err := lookupCreator(users, topic.CreatorId)
		if err != nil {
			return nil, err
		}
		views[i] = &TopicView{Topic: topic, Creator: creator}
	}
	return views, nil
}

func (tc *TopicController) listMembers(ctx context.Context, groupId int64, filter model.MemberFilter, limit, offset int) (int64, []*MemberView, error) {
	total, members, err := tc.db.ListGroupMembers(ctx, groupId, filter, limit, offset)
	if err != nil {
		return 0, nil, err
	}

	userIds := make([]int64, len(members))
	for i, member := range members {
		userIds[i] = member.UserId
	}
	users, err := tc.db.GetUsersByIDs(ctx, userIds)
	if err != nil {
		return 0, nil, err
	}

	views := make([]*MemberView, len(members))
	for i, member := range members {
		user, ok := users[member.UserId]
		if !ok {
			return 0, nil, apperr.DataIntegrity("user %v of group %v", member.UserId, groupId)
		}
		views[i] = &MemberView{
			Id:       user.Id,
			Username: user.Username,
			Nickname: user.Nickname,
			Avatar:   util.Avatar(user.Avatar),
			JoinedAt: member.JoinedAt,
		}
	}
	return total, views, nil
}

func lookupCreator(users map[int64]*model.User, id int64) (*Creator, error) {
	user, ok := users[id]
	if !ok {
		return nil, apperr.DataIntegrity("user %v", id)
	}
	return creatorFromUser(user), nil
}

func subReplyView(users map[int64]*model.User, friends map[int64]bool, reply model.SubReply) (SubReplyView, error) {
	creator, err := lookupCreator(users, reply.CreatorId)
	if err != nil {
		return SubReplyView{}, err
	}
	return SubReplyView{
		Id:        reply.Id,
		Creator:   creator,
		IsFriend:  friends[reply.CreatorId],
		CreatedAt: reply.CreatedAt,
		Text:      reply.Content,
		State:     reply.State,
	}, nil
}
