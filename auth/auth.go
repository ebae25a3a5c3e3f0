package auth

import (
	"context"
	"log"
	"time"

	"github.com/clubhive/clubhive-be/apperr"
	"github.com/clubhive/clubhive-be/db"
)

// Auth is the resolved set of authorization facts for one request. It is
// recomputed per request and never persisted.
type Auth struct {
	Login      bool
	AllowNsfw  bool
	UserID     int64
	Permission Permission
}

var Anonymous = Auth{}

// nsfwMinAccountAge gates NSFW content on account age alone: accounts younger
// than 90 days never see NSFW regardless of any profile setting.
const nsfwMinAccountAge = 90 * 24 * 60 * 60

type Resolver struct {
	db  db.Database
	now func() time.Time
}

func NewResolver(database db.Database) *Resolver {
	return &Resolver{db: database, now: time.Now}
}

// ByToken resolves an opaque credential into an Auth. An empty, unknown or
// expired credential resolves to the anonymous Auth without error; a valid
// token whose user row is missing is a data-integrity fault.
func (r *Resolver) ByToken(ctx context.Context, accessToken string) (*Auth, error) {
	if accessToken == "" {
		return &Anonymous, nil
	}

	now := r.now().Unix()
	token, err := r.db.GetAccessToken(ctx, accessToken, now)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return &Anonymous, nil
	}

	user, err := r.db.GetUserByID(ctx, token.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Println("access token references missing user", token.UserId)
		return nil, apperr.DataIntegrity("user %v of access token", token.UserId)
	}

	blob, err := r.db.GetPermissionBlob(ctx, user.GroupId)
	if err != nil {
		return nil, err
	}

	return &Auth{
		Login:      true,
		AllowNsfw:  now-user.RegisteredAt >= nsfwMinAccountAge,
		UserID:     user.Id,
		Permission: ParsePermission(blob),
	}, nil
}
