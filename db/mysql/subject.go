package mysql

import (
	"context"

	"github.com/clubhive/clubhive-be/model"
	"github.com/upper/db/v4"
)

type SubjectDB struct {
	sess db.Session
}

func getSubjectDB(sess db.Session) *SubjectDB {
	return &SubjectDB{sess}
}

func (sdb *SubjectDB) GetSubjectByID(ctx context.Context, id int64) (*model.Subject, error) {
	var subject model.Subject
	if err := sdb.sess.SQL().
		Select("id", "name", "nsfw").
		From("subject").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&subject); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &subject, nil
}
