package service

import (
	"errors"

	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/model"
	"github.com/dilshat/social-media/util"
	"go.uber.org/zap"
)

const (
	minPasswordLen = 5

	msgDuplicateUsername    = "Username already exists. Please choose another username."
	msgNullCredentials      = "username and password cannot be null"
	msgIncorrectCredentials = "Username or Password is Incorrect"
)

type AccountService interface {
	//RegisterUser persists a new account. A nil result without error means the account was rejected
	RegisterUser(account *model.Account) (*model.Account, error)
	//LoginUser returns the account matching username and password exactly
	LoginUser(username, password *string) (*model.Account, error)
}

type accountService struct {
	accountDao dao.AccountDao
}

func NewAccountService(accountDao dao.AccountDao) AccountService {
	return &accountService{accountDao: accountDao}
}

func (s accountService) RegisterUser(account *model.Account) (*model.Account, error) {
	if account == nil {
		return nil, nil
	}

	_, err := s.accountDao.GetOneByUsername(account.Username)
	if err == nil {
		return nil, NewError(DuplicateUsername, msgDuplicateUsername)
	}
	if !errors.Is(err, dao.ErrNotFound) {
		zap.L().Error("Error looking up username", zap.Error(err))
		return nil, err
	}

	if util.IsBlank(account.Username) || util.Length(account.Password) < minPasswordLen {
		return nil, nil
	}

	created := model.Account{Username: account.Username, Password: account.Password}
	err = s.accountDao.Create(&created)
	if errors.Is(err, dao.ErrAlreadyExists) {
		//lost a race with a concurrent registration of the same username
		return nil, NewError(DuplicateUsername, msgDuplicateUsername)
	}
	if err != nil {
		zap.L().Error("Error creating account", zap.Error(err))
		return nil, err
	}

	return &created, nil
}

func (s accountService) LoginUser(username, password *string) (*model.Account, error) {
	if username == nil || password == nil {
		return nil, NewError(InvalidCredentials, msgNullCredentials)
	}

	account, err := s.accountDao.GetOneByUsernameAndPassword(*username, *password)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, NewError(InvalidCredentials, msgIncorrectCredentials)
	}
	if err != nil {
		zap.L().Error("Error looking up credentials", zap.Error(err))
		return nil, err
	}

	return &account, nil
}
