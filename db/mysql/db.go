package mysql

import (
	"database/sql"
	"fmt"

	"github.com/clubhive/clubhive-be/config"
	appDb "github.com/clubhive/clubhive-be/db"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
)

type MySQLDB struct {
	*AuthDB
	*UserDB
	*GroupDB
	*SubjectDB
	*TopicDB
	*NotifyDB
	sess  db.Session
	sqlDB *sql.DB
}

func GetDatabase(cfg *config.Config) (appDb.Database, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?tls=true&parseTime=true",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MySQLDB{
		AuthDB:    getAuthDB(sess),
		UserDB:    getUserDB(sess),
		GroupDB:   getGroupDB(sess),
		SubjectDB: getSubjectDB(sess),
		TopicDB:   getTopicDB(sess),
		NotifyDB:  getNotifyDB(sess),
		sess:      sess,
		sqlDB:     sqlDB,
	}, nil
}

func (mdb *MySQLDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MySQLDB) Close() error {
	return mdb.sess.Close()
}
