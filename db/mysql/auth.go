package mysql

import (
	"context"

	"github.com/clubhive/clubhive-be/model"
	"github.com/upper/db/v4"
)

type AuthDB struct {
	sess db.Session
}

func getAuthDB(sess db.Session) *AuthDB {
	return &AuthDB{sess}
}

func (adb *AuthDB) GetAccessToken(ctx context.Context, token string, now int64) (*model.AccessToken, error) {
	var row model.AccessToken
	if err := adb.sess.SQL().
		Select("token", "user_id", "expires").
		From("access_token").
		Where("token = ? AND expires > ?", token, now).
		IteratorContext(ctx).
		One(&row); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

type permissionRow struct {
	Perm []byte `db:"perm"`
}

func (adb *AuthDB) GetPermissionBlob(ctx context.Context, roleId int64) ([]byte, error) {
	var row permissionRow
	if err := adb.sess.SQL().
		Select("perm").
		From("usergroup").
		Where("id = ?", roleId).
		IteratorContext(ctx).
		One(&row); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return row.Perm, nil
}
