// Package memdao keeps accounts and messages in process memory. It backs
// tests and the DB_DRIVER=memory mode.
package memdao

import (
	"sort"
	"sync"

	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/model"
)

//Store holds both record kinds so account and message daos share one lock and id space per kind
type Store struct {
	mu            sync.RWMutex
	accounts      map[int]model.Account
	messages      map[int]model.Message
	lastAccountId int
	lastMessageId int
}

func New() *Store {
	return &Store{
		accounts: make(map[int]model.Account),
		messages: make(map[int]model.Message),
	}
}

func (s *Store) Accounts() dao.AccountDao {
	return &accountDao{s}
}

func (s *Store) Messages() dao.MessageDao {
	return &messageDao{s}
}

type accountDao struct {
	s *Store
}

func (a *accountDao) Create(account *model.Account) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for _, existing := range a.s.accounts {
		if existing.Username == account.Username {
			return dao.ErrAlreadyExists
		}
	}
	a.s.lastAccountId++
	account.AccountId = a.s.lastAccountId
	a.s.accounts[account.AccountId] = *account
	return nil
}

func (a *accountDao) GetOneById(id int) (model.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	account, ok := a.s.accounts[id]
	if !ok {
		return model.Account{}, dao.ErrNotFound
	}
	return account, nil
}

func (a *accountDao) GetOneByUsername(username string) (model.Account, error) {
	return a.find(func(acc model.Account) bool {
		return acc.Username == username
	})
}

func (a *accountDao) GetOneByUsernameAndPassword(username, password string) (model.Account, error) {
	return a.find(func(acc model.Account) bool {
		return acc.Username == username && acc.Password == password
	})
}

func (a *accountDao) find(match func(model.Account) bool) (model.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	for _, acc := range a.s.accounts {
		if match(acc) {
			return acc, nil
		}
	}
	return model.Account{}, dao.ErrNotFound
}

type messageDao struct {
	s *Store
}

func (m *messageDao) Create(msg *model.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.lastMessageId++
	msg.MessageId = m.s.lastMessageId
	m.s.messages[msg.MessageId] = *msg
	return nil
}

func (m *messageDao) Update(msg *model.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.messages[msg.MessageId]; !ok {
		return dao.ErrNotFound
	}
	m.s.messages[msg.MessageId] = *msg
	return nil
}

func (m *messageDao) GetOneById(id int) (model.Message, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	msg, ok := m.s.messages[id]
	if !ok {
		return model.Message{}, dao.ErrNotFound
	}
	return msg, nil
}

func (m *messageDao) GetAll() ([]model.Message, error) {
	return m.filter(func(model.Message) bool { return true }), nil
}

func (m *messageDao) GetAllByPostedBy(accountId int) ([]model.Message, error) {
	return m.filter(func(msg model.Message) bool {
		return msg.PostedBy == accountId
	}), nil
}

func (m *messageDao) Delete(id int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.messages[id]; !ok {
		return dao.ErrNotFound
	}
	delete(m.s.messages, id)
	return nil
}

//filter returns matching messages ordered by id
func (m *messageDao) filter(match func(model.Message) bool) []model.Message {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	result := []model.Message{}
	for _, msg := range m.s.messages {
		if match(msg) {
			result = append(result, msg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MessageId < result[j].MessageId
	})
	return result
}
