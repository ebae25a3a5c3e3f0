package mysql

import (
	"context"

	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/upper/db/v4"
)

type NotifyDB struct {
	sess db.Session
}

func getNotifyDB(sess db.Session) *NotifyDB {
	return &NotifyDB{sess}
}

func (ndb *NotifyDB) CreateNotification(ctx context.Context, req *appDb.CreateNotification) error {
	_, err := ndb.sess.SQL().
		InsertInto("notify").
		Columns("uid", "from_uid", "ntype", "post_id", "topic_id", "title", "dateline").
		Values(req.DestUserId, req.SourceUserId, int(req.Type), req.PostId, req.TopicId, req.Title, req.Timestamp).
		ExecContext(ctx)
	return err
}
