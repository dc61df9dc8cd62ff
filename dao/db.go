package dao

import (
	"errors"
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/index"
	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/social-media/model"
	"github.com/dilshat/social-media/util"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type Db interface {
	Init(data interface{}) error
	One(fieldName string, value interface{}, to interface{}) error
	Save(data interface{}) error
	DeleteStruct(data interface{}) error
	Select(matchers ...q.Matcher) storm.Query
	Find(fieldName string, value interface{}, to interface{}, options ...func(q *index.Options)) error
	All(to interface{}, options ...func(*index.Options)) error
	Close() error
}

var (
	once     sync.Once
	instance Db
)

func GetClient(dbFilePath string) (Db, error) {
	var err error

	once.Do(func() {
		exists := util.FileExists(dbFilePath)

		instance, err = storm.Open(dbFilePath, storm.BoltOptions(0600, &bolt.Options{Timeout: 10 * time.Second, ReadOnly: false}))
		if err != nil || exists {
			return
		}

		//init db structs
		err = instance.Init(&model.Account{})
		if err != nil {
			return
		}
		err = instance.Init(&model.Message{})
	})

	return instance, err
}

//translate maps storm sentinel errors onto the package ones
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storm.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storm.ErrAlreadyExists):
		return ErrAlreadyExists
	default:
		return err
	}
}
