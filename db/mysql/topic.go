package mysql

import (
	"context"
	"database/sql"

	"github.com/clubhive/clubhive-be/apperr"
	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/clubhive/clubhive-be/model"
	"github.com/upper/db/v4"
)

type TopicDB struct {
	sess db.Session
}

func getTopicDB(sess db.Session) *TopicDB {
	return &TopicDB{sess}
}

func (tdb *TopicDB) ListTopics(ctx context.Context, groupId int64, displays []model.TopicDisplay, limit, offset int) (int64, []*model.Topic, error) {
	where := []interface{}{"gid = ? AND display IN ?", groupId, displayValues(displays)}

	total, err := tdb.sess.Collection("group_topic").
		Find(where...).
		Count()
	if err != nil {
		return 0, nil, err
	}

	var topics []*model.Topic
	if err := tdb.sess.SQL().
		Select("*").
		From("group_topic").
		Where(where...).
		OrderBy("lastpost DESC").
		Limit(limit).
		Offset(offset).
		IteratorContext(ctx).
		All(&topics); err != nil {
		return 0, nil, err
	}
	return int64(total), topics, nil
}

func (tdb *TopicDB) GetTopicByID(ctx context.Context, id int64) (*model.Topic, error) {
	var topic model.Topic
	if err := tdb.sess.SQL().
		Select("*").
		From("group_topic").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&topic); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (tdb *TopicDB) GetTopicDetails(ctx context.Context, id int64) (*model.TopicDetails, error) {
	topic, err := tdb.GetTopicByID(ctx, id)
	if err != nil || topic == nil {
		return nil, err
	}

	var posts []model.Post
	if err := tdb.sess.SQL().
		Select("*").
		From("group_post").
		Where("tid = ?", id).
		OrderBy("id ASC").
		IteratorContext(ctx).
		All(&posts); err != nil {
		return nil, err
	}

	// A topic is always created together with its body post, so an empty post
	// list here means the store is corrupt.
	if len(posts) == 0 {
		return nil, apperr.DataIntegrity("top post of topic %v", id)
	}

	return &model.TopicDetails{
		Topic:   *topic,
		Text:    posts[0].Content,
		Replies: model.AssembleReplies(posts[1:]),
	}, nil
}

func (tdb *TopicDB) CreateTopic(ctx context.Context, req *appDb.CreateTopic) (int64, error) {
	var topicId int64
	err := tdb.sess.TxContext(ctx, func(sess db.Session) error {
		res, err := sess.SQL().
			InsertInto("group_topic").
			Columns("gid", "uid", "title", "dateline", "lastpost", "replies", "state", "display").
			Values(req.GroupId, req.UserId, req.Title, req.Now, req.Now, 0, int(req.State), int(req.Display)).
			ExecContext(ctx)
		if err != nil {
			return err
		}
		topicId, err = res.LastInsertId()
		if err != nil {
			return err
		}

		_, err = sess.SQL().
			InsertInto("group_post").
			Columns("tid", "uid", "content", "dateline", "state", "related").
			Values(topicId, req.UserId, req.Content, req.Now, int(req.State), 0).
			ExecContext(ctx)
		return err
	}, &sql.TxOptions{})
	return topicId, err
}

func (tdb *TopicDB) CreateReply(ctx context.Context, req *appDb.CreateReply) (*model.Post, error) {
	var post *model.Post
	err := tdb.sess.TxContext(ctx, func(sess db.Session) error {
		// Lock the topic row so concurrent replies can't lose counter updates.
		row, err := sess.SQL().QueryRowContext(ctx, `SELECT id, gid, uid, title, dateline, lastpost, replies, state, display
				FROM group_topic WHERE id = ? FOR UPDATE`, req.TopicId)
		if err != nil {
			return err
		}
		var topic model.Topic
		if err := row.Scan(&topic.Id, &topic.ParentId, &topic.CreatorId, &topic.Title,
			&topic.CreatedAt, &topic.UpdatedAt, &topic.Replies, &topic.State, &topic.Display); err != nil {
			if err == sql.ErrNoRows {
				return apperr.NotFound("topic %v", req.TopicId)
			}
			return err
		}

		res, err := sess.SQL().
			InsertInto("group_post").
			Columns("tid", "uid", "content", "dateline", "state", "related").
			Values(req.TopicId, req.UserId, req.Content, req.Now, int(req.State), req.RelatedId).
			ExecContext(ctx)
		if err != nil {
			return err
		}
		postId, err := res.LastInsertId()
		if err != nil {
			return err
		}

		update := sess.SQL().
			Update("group_topic").
			Set("replies = ?", topic.Replies+1)
		if topic.State != model.ReplyStateAdminSilentTopic {
			// Silenced topics never bubble back up the listing.
			update = update.Set("lastpost = ?", model.ScoredUpdateTime(req.Now, &topic))
		}
		if _, err := update.
			Where("id = ?", topic.Id).
			ExecContext(ctx); err != nil {
			return err
		}

		post = &model.Post{
			Id:        postId,
			TopicId:   req.TopicId,
			CreatorId: req.UserId,
			Content:   req.Content,
			CreatedAt: req.Now,
			State:     req.State,
			Related:   req.RelatedId,
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func displayValues(displays []model.TopicDisplay) []int {
	values := make([]int, len(displays))
	for i, d := range displays {
		values[i] = int(d)
	}
	return values
}
