package dao

import (
	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/social-media/model"
)

type AccountDao interface {
	//Create persists account and sets its generated id
	Create(account *model.Account) error
	//GetOneById returns account by id
	GetOneById(id int) (model.Account, error)
	//GetOneByUsername returns account with the given username
	GetOneByUsername(username string) (model.Account, error)
	//GetOneByUsernameAndPassword returns account matching both username and password
	GetOneByUsernameAndPassword(username, password string) (model.Account, error)
}

func NewAccountDao(db Db) AccountDao {
	return &accountDao{db: db}
}

type accountDao struct {
	db Db
}

func (a accountDao) Create(account *model.Account) error {
	return translate(a.db.Save(account))
}

func (a accountDao) GetOneById(id int) (account model.Account, err error) {
	err = translate(a.db.One("AccountId", id, &account))
	return
}

func (a accountDao) GetOneByUsername(username string) (account model.Account, err error) {
	err = translate(a.db.One("Username", username, &account))
	return
}

func (a accountDao) GetOneByUsernameAndPassword(username, password string) (account model.Account, err error) {
	err = translate(a.db.Select(q.Eq("Username", username), q.Eq("Password", password)).First(&account))
	return
}
