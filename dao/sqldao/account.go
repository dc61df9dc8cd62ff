package sqldao

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/model"
)

var accountColumns = []string{"account_id", "username", "password"}

func NewAccountDao(db *sql.DB) dao.AccountDao {
	return &accountDao{db: db}
}

type accountDao struct {
	db *sql.DB
}

func (a accountDao) Create(account *model.Account) error {
	res, err := sq.Insert("account").
		Columns("username", "password").
		Values(account.Username, account.Password).
		RunWith(a.db).Exec()
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	account.AccountId = int(id)
	return nil
}

func (a accountDao) GetOneById(id int) (model.Account, error) {
	return a.one(sq.Eq{"account_id": id})
}

func (a accountDao) GetOneByUsername(username string) (model.Account, error) {
	return a.one(sq.Eq{"username": username})
}

func (a accountDao) GetOneByUsernameAndPassword(username, password string) (model.Account, error) {
	return a.one(sq.And{sq.Eq{"username": username}, sq.Eq{"password": password}})
}

func (a accountDao) one(where sq.Sqlizer) (model.Account, error) {
	var account model.Account
	err := sq.Select(accountColumns...).
		From("account").
		Where(where).
		Limit(1).
		RunWith(a.db).QueryRow().
		Scan(&account.AccountId, &account.Username, &account.Password)
	if err != nil {
		return model.Account{}, translate(err)
	}
	return account, nil
}
