package model

// User is the read-only member aggregate. Rows live in the shared member table
// and are never written by this service.
type User struct {
	Id           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Nickname     string `db:"nickname" json:"nickname"`
	Avatar       string `db:"avatar" json:"-"`
	GroupId      int64  `db:"groupid" json:"user_group"`
	RegisteredAt int64  `db:"regdate" json:"-"`
	Sign         string `db:"sign" json:"sign"`
}

// AccessToken is an unexpired credential row. Tokens are minted elsewhere;
// this service only resolves them.
type AccessToken struct {
	Token     string `db:"token"`
	UserId    int64  `db:"user_id"`
	ExpiresAt int64  `db:"expires"`
}

type Subject struct {
	Id   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Nsfw bool   `db:"nsfw" json:"nsfw"`
}
