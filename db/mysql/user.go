package mysql

import (
	"context"

	"github.com/clubhive/clubhive-be/model"
	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("member").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (udb *UserDB) GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	users := make(map[int64]*model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var rows []*model.User
	if err := udb.sess.SQL().
		Select("*").
		From("member").
		Where("id IN ?", dedupeIds(ids)).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	for _, user := range rows {
		users[user.Id] = user
	}
	return users, nil
}

type friendRow struct {
	FriendId int64 `db:"fid"`
}

func (udb *UserDB) GetFriendIDs(ctx context.Context, ownerId int64) (map[int64]bool, error) {
	friends := make(map[int64]bool)
	if ownerId == 0 {
		return friends, nil
	}

	var rows []friendRow
	if err := udb.sess.SQL().
		Select("fid").
		From("friend").
		Where("uid = ?", ownerId).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		friends[row.FriendId] = true
	}
	return friends, nil
}

func dedupeIds(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	deduped := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	return deduped
}
