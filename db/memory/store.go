// Package memory implements db.Database over in-process maps. It backs the
// STORAGE=memory dev mode and the workflow tests; multi-write operations get
// the same all-or-nothing semantics as the MySQL backend via snapshot
// rollback.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubhive/clubhive-be/apperr"
	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/clubhive/clubhive-be/model"
)

type state struct {
	users     map[int64]model.User
	tokens    map[string]model.AccessToken
	permBlobs map[int64][]byte
	groups    map[int64]model.Group
	members   map[int64][]model.GroupMember
	friends   map[int64]map[int64]bool
	subjects  map[int64]model.Subject
	topics    map[int64]model.Topic
	posts     map[int64]model.Post
	// topicPosts keeps post ids per topic in insertion (id) order.
	topicPosts map[int64][]int64
	notices    []appDb.CreateNotification

	nextTopicId int64
	nextPostId  int64
}

type Store struct {
	mu sync.RWMutex
	st *state

	// replyFault, when set, aborts the reply transaction between the post
	// insert and the topic update.
	replyFault error
}

func New() *Store {
	return &Store{st: &state{
		users:      make(map[int64]model.User),
		tokens:     make(map[string]model.AccessToken),
		permBlobs:  make(map[int64][]byte),
		groups:     make(map[int64]model.Group),
		members:    make(map[int64][]model.GroupMember),
		friends:    make(map[int64]map[int64]bool),
		subjects:   make(map[int64]model.Subject),
		topics:     make(map[int64]model.Topic),
		posts:      make(map[int64]model.Post),
		topicPosts: make(map[int64][]int64),

		nextTopicId: 1,
		nextPostId:  1,
	}}
}

func (s *Store) Close() error {
	return nil
}

// withTx runs fn against a copy of the store state and installs the copy only
// if fn succeeds, so a fault mid-way leaves nothing applied.
func (s *Store) withTx(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.st = next
	return nil
}

func (st *state) clone() *state {
	next := &state{
		users:      make(map[int64]model.User, len(st.users)),
		tokens:     make(map[string]model.AccessToken, len(st.tokens)),
		permBlobs:  make(map[int64][]byte, len(st.permBlobs)),
		groups:     make(map[int64]model.Group, len(st.groups)),
		members:    make(map[int64][]model.GroupMember, len(st.members)),
		friends:    make(map[int64]map[int64]bool, len(st.friends)),
		subjects:   make(map[int64]model.Subject, len(st.subjects)),
		topics:     make(map[int64]model.Topic, len(st.topics)),
		posts:      make(map[int64]model.Post, len(st.posts)),
		topicPosts: make(map[int64][]int64, len(st.topicPosts)),
		notices:    append([]appDb.CreateNotification(nil), st.notices...),

		nextTopicId: st.nextTopicId,
		nextPostId:  st.nextPostId,
	}
	for k, v := range st.users {
		next.users[k] = v
	}
	for k, v := range st.tokens {
		next.tokens[k] = v
	}
	for k, v := range st.permBlobs {
		next.permBlobs[k] = v
	}
	for k, v := range st.groups {
		next.groups[k] = v
	}
	for k, v := range st.members {
		next.members[k] = append([]model.GroupMember(nil), v...)
	}
	for k, v := range st.friends {
		friends := make(map[int64]bool, len(v))
		for id := range v {
			friends[id] = true
		}
		next.friends[k] = friends
	}
	for k, v := range st.subjects {
		next.subjects[k] = v
	}
	for k, v := range st.topics {
		next.topics[k] = v
	}
	for k, v := range st.posts {
		next.posts[k] = v
	}
	for k, v := range st.topicPosts {
		next.topicPosts[k] = append([]int64(nil), v...)
	}
	return next
}

// === seeding (dev mode and tests) ===

func (s *Store) AddUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[user.Id] = user
}

func (s *Store) AddAccessToken(token model.AccessToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.tokens[token.Token] = token
}

func (s *Store) SetPermissionBlob(roleId int64, blob []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.permBlobs[roleId] = blob
}

func (s *Store) AddGroup(group model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.groups[group.Id] = group
}

func (s *Store) AddGroupMember(member model.GroupMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.members[member.GroupId] = append(s.st.members[member.GroupId], member)
}

func (s *Store) AddFriend(ownerId, friendId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.friends[ownerId] == nil {
		s.st.friends[ownerId] = make(map[int64]bool)
	}
	s.st.friends[ownerId][friendId] = true
}

func (s *Store) AddSubject(subject model.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.subjects[subject.Id] = subject
}

// AddTopic seeds a topic and its posts, assigning ids where zero. The first
// post is the topic body.
func (s *Store) AddTopic(topic model.Topic, posts ...model.Post) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if topic.Id == 0 {
		topic.Id = s.st.nextTopicId
	}
	if topic.Id >= s.st.nextTopicId {
		s.st.nextTopicId = topic.Id + 1
	}
	s.st.topics[topic.Id] = topic
	for _, post := range posts {
		post.TopicId = topic.Id
		s.st.insertPost(post)
	}
	return topic.Id
}

// Notifications returns everything emitted so far, oldest first.
func (s *Store) Notifications() []appDb.CreateNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]appDb.CreateNotification(nil), s.st.notices...)
}

func (st *state) insertPost(post model.Post) int64 {
	if post.Id == 0 {
		post.Id = st.nextPostId
	}
	if post.Id >= st.nextPostId {
		st.nextPostId = post.Id + 1
	}
	st.posts[post.Id] = post
	st.topicPosts[post.TopicId] = append(st.topicPosts[post.TopicId], post.Id)
	return post.Id
}

// === AuthDatabase ===

func (s *Store) GetAccessToken(ctx context.Context, token string, now int64) (*model.AccessToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.st.tokens[token]
	if !ok || row.ExpiresAt <= now {
		return nil, nil
	}
	return &row, nil
}

func (s *Store) GetPermissionBlob(ctx context.Context, roleId int64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.permBlobs[roleId], nil
}

// === UserDatabase ===

func (s *Store) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.st.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[int64]*model.User, len(ids))
	for _, id := range ids {
		if user, ok := s.st.users[id]; ok {
			user := user
			users[id] = &user
		}
	}
	return users, nil
}

func (s *Store) GetFriendIDs(ctx context.Context, ownerId int64) (map[int64]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends := make(map[int64]bool)
	if ownerId == 0 {
		return friends, nil
	}
	for id := range s.st.friends[ownerId] {
		friends[id] = true
	}
	return friends, nil
}

// === GroupDatabase ===

func (s *Store) GetGroupByName(ctx context.Context, name string) (*model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, group := range s.st.groups {
		if group.Name == name {
			group := group
			return &group, nil
		}
	}
	return nil, nil
}

func (s *Store) GetGroupByID(ctx context.Context, id int64) (*model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.st.groups[id]
	if !ok {
		return nil, nil
	}
	return &group, nil
}

func (s *Store) IsMemberOfGroup(ctx context.Context, groupId, userId int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, member := range s.st.members[groupId] {
		if member.UserId == userId {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListGroupMembers(ctx context.Context, groupId int64, filter model.MemberFilter, limit, offset int) (int64, []*model.GroupMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.GroupMember, 0, len(s.st.members[groupId]))
	for _, member := range s.st.members[groupId] {
		switch filter {
		case model.MemberFilterMod:
			if !member.Moderator {
				continue
			}
		case model.MemberFilterNormal:
			if member.Moderator {
				continue
			}
		}
		matched = append(matched, member)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].JoinedAt > matched[j].JoinedAt
	})

	total := int64(len(matched))
	page := paginate(len(matched), limit, offset)
	members := make([]*model.GroupMember, 0, len(page))
	for _, i := range page {
		member := matched[i]
		members = append(members, &member)
	}
	return total, members, nil
}

// === SubjectDatabase ===

func (s *Store) GetSubjectByID(ctx context.Context, id int64) (*model.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.st.subjects[id]
	if !ok {
		return nil, nil
	}
	return &subject, nil
}

// === TopicDatabase ===

func (s *Store) ListTopics(ctx context.Context, groupId int64, displays []model.TopicDisplay, limit, offset int) (int64, []*model.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed := make(map[model.TopicDisplay]bool, len(displays))
	for _, d := range displays {
		allowed[d] = true
	}

	matched := make([]model.Topic, 0, len(s.st.topics))
	for _, topic := range s.st.topics {
		if topic.ParentId == groupId && allowed[topic.Display] {
			matched = append(matched, topic)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].UpdatedAt != matched[j].UpdatedAt {
			return matched[i].UpdatedAt > matched[j].UpdatedAt
		}
		return matched[i].Id > matched[j].Id
	})

	total := int64(len(matched))
	page := paginate(len(matched), limit, offset)
	topics := make([]*model.Topic, 0, len(page))
	for _, i := range page {
		topic := matched[i]
		topics = append(topics, &topic)
	}
	return total, topics, nil
}

func (s *Store) GetTopicByID(ctx context.Context, id int64) (*model.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.st.topics[id]
	if !ok {
		return nil, nil
	}
	return &topic, nil
}

func (s *Store) GetTopicDetails(ctx context.Context, id int64) (*model.TopicDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.st.topics[id]
	if !ok {
		return nil, nil
	}

	postIds := s.st.topicPosts[id]
	if len(postIds) == 0 {
		return nil, apperr.DataIntegrity("top post of topic %v", id)
	}
	posts := make([]model.Post, len(postIds))
	for i, postId := range postIds {
		posts[i] = s.st.posts[postId]
	}

	return &model.TopicDetails{
		Topic:   topic,
		Text:    posts[0].Content,
		Replies: model.AssembleReplies(posts[1:]),
	}, nil
}

func (s *Store) CreateTopic(ctx context.Context, req *appDb.CreateTopic) (int64, error) {
	var topicId int64
	err := s.withTx(func(st *state) error {
		topicId = st.nextTopicId
		st.nextTopicId++
		st.topics[topicId] = model.Topic{
			Id:        topicId,
			ParentId:  req.GroupId,
			CreatorId: req.UserId,
			Title:     req.Title,
			CreatedAt: req.Now,
			UpdatedAt: req.Now,
			Replies:   0,
			State:     req.State,
			Display:   req.Display,
		}
		st.insertPost(model.Post{
			TopicId:   topicId,
			CreatorId: req.UserId,
			Content:   req.Content,
			CreatedAt: req.Now,
			State:     req.State,
			Related:   0,
		})
		return nil
	})
	return topicId, err
}

func (s *Store) CreateReply(ctx context.Context, req *appDb.CreateReply) (*model.Post, error) {
	var post model.Post
	err := s.withTx(func(st *state) error {
		topic, ok := st.topics[req.TopicId]
		if !ok {
			return apperr.NotFound("topic %v", req.TopicId)
		}

		postId := st.insertPost(model.Post{
			TopicId:   req.TopicId,
			CreatorId: req.UserId,
			Content:   req.Content,
			CreatedAt: req.Now,
			State:     req.State,
			Related:   req.RelatedId,
		})

		if s.replyFault != nil {
			return s.replyFault
		}

		updated := topic
		updated.Replies = topic.Replies + 1
		if topic.State != model.ReplyStateAdminSilentTopic {
			updated.UpdatedAt = model.ScoredUpdateTime(req.Now, &topic)
		}
		st.topics[topic.Id] = updated

		post = st.posts[postId]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// === NotifyDatabase ===

func (s *Store) CreateNotification(ctx context.Context, req *appDb.CreateNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.notices = append(s.st.notices, *req)
	return nil
}

func paginate(length, limit, offset int) []int {
	if offset >= length || limit <= 0 {
		return nil
	}
	end := offset + limit
	if end > length {
		end = length
	}
	page := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		page = append(page, i)
	}
	return page
}
