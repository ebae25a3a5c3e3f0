package mysql

import (
	"context"

	"github.com/clubhive/clubhive-be/model"
	"github.com/upper/db/v4"
)

type GroupDB struct {
	sess db.Session
}

func getGroupDB(sess db.Session) *GroupDB {
	return &GroupDB{sess}
}

func (gdb *GroupDB) GetGroupByName(ctx context.Context, name string) (*model.Group, error) {
	return gdb.getGroup(ctx, "name = ?", name)
}

func (gdb *GroupDB) GetGroupByID(ctx context.Context, id int64) (*model.Group, error) {
	return gdb.getGroup(ctx, "id = ?", id)
}

func (gdb *GroupDB) getGroup(ctx context.Context, cond string, value interface{}) (*model.Group, error) {
	var group model.Group
	if err := gdb.sess.SQL().
		Select("*").
		From("`group`").
		Where(cond, value).
		IteratorContext(ctx).
		One(&group); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (gdb *GroupDB) IsMemberOfGroup(ctx context.Context, groupId, userId int64) (bool, error) {
	count, err := gdb.sess.Collection("group_member").
		Find("gid = ? AND uid = ?", groupId, userId).
		Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gdb *GroupDB) ListGroupMembers(ctx context.Context, groupId int64, filter model.MemberFilter, limit, offset int) (int64, []*model.GroupMember, error) {
	where := []interface{}{"gid = ?", groupId}
	switch filter {
	case model.MemberFilterMod:
		where = []interface{}{"gid = ? AND moderator = ?", groupId, true}
	case model.MemberFilterNormal:
		where = []interface{}{"gid = ? AND moderator = ?", groupId, false}
	}

	total, err := gdb.sess.Collection("group_member").
		Find(where...).
		Count()
	if err != nil {
		return 0, nil, err
	}

	var members []*model.GroupMember
	if err := gdb.sess.SQL().
		Select("*").
		From("group_member").
		Where(where...).
		OrderBy("dateline DESC").
		Limit(limit).
		Offset(offset).
		IteratorContext(ctx).
		All(&members); err != nil {
		return 0, nil, err
	}
	return int64(total), members, nil
}
