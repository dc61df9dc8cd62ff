package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dchest/uniuri"
	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/dao/memdao"
	"github.com/dilshat/social-media/model"
	"github.com/dilshat/social-media/notify"
	"github.com/stretchr/testify/require"
)

const (
	USERNAME = "testuser1"
	PASSWORD = "password"
	TEXT     = "hello"
)

var errStorage = errors.New("storage is down")

type recordingPublisher struct {
	events []notify.Event
}

func (r *recordingPublisher) Publish(event notify.Event) {
	r.events = append(r.events, event)
}

type fixture struct {
	accounts  AccountService
	messages  MessageService
	store     *memdao.Store
	published *recordingPublisher
}

func newFixture() fixture {
	store := memdao.New()
	published := &recordingPublisher{}
	return fixture{
		accounts:  NewAccountService(store.Accounts()),
		messages:  NewMessageService(store.Messages(), store.Accounts(), published),
		store:     store,
		published: published,
	}
}

func (f fixture) register(t *testing.T) *model.Account {
	acc, err := f.accounts.RegisterUser(&model.Account{Username: USERNAME, Password: PASSWORD})
	require.NoError(t, err)
	require.NotNil(t, acc)
	return acc
}

func (f fixture) post(t *testing.T, postedBy int, text string) *model.Message {
	msg, err := f.messages.CreateMessage(&model.Message{PostedBy: postedBy, MessageText: text})
	require.NoError(t, err)
	require.NotNil(t, msg)
	return msg
}

func requireKind(t *testing.T, err error, kind ErrorKind, text string) {
	t.Helper()
	actual, ok := KindOf(err)
	require.True(t, ok, "expected service error, got %v", err)
	require.Equal(t, kind, actual)
	require.Equal(t, text, err.Error())
}

func strPtr(s string) *string {
	return &s
}

//----------------------accounts------------

func TestAccountService_RegisterUser(t *testing.T) {
	f := newFixture()

	acc := f.register(t)

	require.True(t, acc.AccountId > 0)
	require.Equal(t, USERNAME, acc.Username)
	require.Equal(t, PASSWORD, acc.Password)
}

func TestAccountService_RegisterUserDuplicate(t *testing.T) {
	f := newFixture()
	first := f.register(t)

	acc, err := f.accounts.RegisterUser(&model.Account{Username: USERNAME, Password: "another password"})

	require.Nil(t, acc)
	requireKind(t, err, DuplicateUsername, "Username already exists. Please choose another username.")

	stored, err := f.store.Accounts().GetOneById(first.AccountId)
	require.NoError(t, err)
	require.Equal(t, *first, stored)
}

func TestAccountService_RegisterUserSilentlyRejects(t *testing.T) {
	f := newFixture()

	for _, candidate := range []*model.Account{
		nil,
		{Username: "", Password: PASSWORD},
		{Username: "   ", Password: PASSWORD},
		{Username: USERNAME, Password: "ab"},
		{Username: USERNAME, Password: "abcd"},
		{Username: USERNAME, Password: "ééé"},
		{Username: USERNAME, Password: "паро"},
	} {
		acc, err := f.accounts.RegisterUser(candidate)

		require.NoError(t, err)
		require.Nil(t, acc)
	}

	_, err := f.store.Accounts().GetOneByUsername(USERNAME)
	require.Equal(t, dao.ErrNotFound, err)
}

func TestAccountService_RegisterUserMinimalPassword(t *testing.T) {
	f := newFixture()

	acc, err := f.accounts.RegisterUser(&model.Account{Username: USERNAME, Password: "abcde"})

	require.NoError(t, err)
	require.NotNil(t, acc)

	acc, err = f.accounts.RegisterUser(&model.Account{Username: "other", Password: "ééééé"})

	require.NoError(t, err)
	require.NotNil(t, acc)
}

func TestAccountService_RegisterUserLostRace(t *testing.T) {
	s := NewAccountService(racingAccountDao{})

	acc, err := s.RegisterUser(&model.Account{Username: USERNAME, Password: PASSWORD})

	require.Nil(t, acc)
	requireKind(t, err, DuplicateUsername, "Username already exists. Please choose another username.")
}

func TestAccountService_RegisterUserStorageError(t *testing.T) {
	s := NewAccountService(failingAccountDao{})

	acc, err := s.RegisterUser(&model.Account{Username: USERNAME, Password: PASSWORD})

	require.Nil(t, acc)
	require.Equal(t, errStorage, err)
	_, isServiceErr := KindOf(err)
	require.False(t, isServiceErr)
}

func TestAccountService_LoginUser(t *testing.T) {
	f := newFixture()
	registered := f.register(t)

	acc, err := f.accounts.LoginUser(strPtr(USERNAME), strPtr(PASSWORD))

	require.NoError(t, err)
	require.Equal(t, registered, acc)
}

func TestAccountService_LoginUserWrongPassword(t *testing.T) {
	f := newFixture()
	f.register(t)

	acc, err := f.accounts.LoginUser(strPtr(USERNAME), strPtr("wrong password"))

	require.Nil(t, acc)
	requireKind(t, err, InvalidCredentials, "Username or Password is Incorrect")
}

func TestAccountService_LoginUserMissingFields(t *testing.T) {
	f := newFixture()
	f.register(t)

	_, err := f.accounts.LoginUser(nil, strPtr(PASSWORD))
	requireKind(t, err, InvalidCredentials, "username and password cannot be null")

	_, err = f.accounts.LoginUser(strPtr(USERNAME), nil)
	requireKind(t, err, InvalidCredentials, "username and password cannot be null")
}

//----------------------messages------------

func TestMessageService_CreateMessage(t *testing.T) {
	f := newFixture()
	acc := f.register(t)

	msg := f.post(t, acc.AccountId, TEXT)

	require.True(t, msg.MessageId > 0)
	require.Equal(t, acc.AccountId, msg.PostedBy)
	require.Equal(t, TEXT, msg.MessageText)
	require.True(t, msg.TimePostedEpoch > 0)

	require.Len(t, f.published.events, 1)
	require.Equal(t, notify.MessageCreated, f.published.events[0].Type)
	require.Equal(t, *msg, f.published.events[0].Message)
}

func TestMessageService_CreateMessageKeepsTimestamp(t *testing.T) {
	f := newFixture()
	acc := f.register(t)

	msg, err := f.messages.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: TEXT, TimePostedEpoch: 1669947792})

	require.NoError(t, err)
	require.Equal(t, int64(1669947792), msg.TimePostedEpoch)
}

func TestMessageService_CreateMessageStampsTime(t *testing.T) {
	store := memdao.New()
	s := &messageService{
		messageDao: store.Messages(),
		accountDao: store.Accounts(),
		now:        func() time.Time { return time.Unix(1700000000, 0) },
	}
	acc := &model.Account{Username: USERNAME, Password: PASSWORD}
	require.NoError(t, store.Accounts().Create(acc))

	msg, err := s.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: TEXT})

	require.NoError(t, err)
	require.Equal(t, int64(1700000000), msg.TimePostedEpoch)
}

func TestMessageService_CreateMessageValidation(t *testing.T) {
	f := newFixture()
	acc := f.register(t)

	_, err := f.messages.CreateMessage(nil)
	requireKind(t, err, MessageNotFound, "message cannot be null")

	_, err = f.messages.CreateMessage(&model.Message{PostedBy: acc.AccountId + 100, MessageText: TEXT})
	requireKind(t, err, MessageValidation, "Message not posted by valid user")

	_, err = f.messages.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: ""})
	requireKind(t, err, MessageValidation, "Message cannot be blank")

	_, err = f.messages.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: " \t "})
	requireKind(t, err, MessageValidation, "Message cannot be blank")

	_, err = f.messages.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: uniuri.NewLen(256)})
	requireKind(t, err, MessageValidation, "Message too long. Message should be under 255 characters")

	all, _ := f.messages.GetAllMessages()
	require.Empty(t, all)
	require.Empty(t, f.published.events)
}

func TestMessageService_CreateMessageValidationOrder(t *testing.T) {
	f := newFixture()

	//unknown poster is reported before blank text
	_, err := f.messages.CreateMessage(&model.Message{PostedBy: 1, MessageText: ""})
	requireKind(t, err, MessageValidation, "Message not posted by valid user")

	acc := f.register(t)

	//blank is reported before length
	_, err = f.messages.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: ""})
	requireKind(t, err, MessageValidation, "Message cannot be blank")
}

func TestMessageService_CreateMessageMaxLength(t *testing.T) {
	f := newFixture()
	acc := f.register(t)

	msg := f.post(t, acc.AccountId, uniuri.NewLen(255))
	require.Len(t, msg.MessageText, 255)

	//length is counted in characters
	f.post(t, acc.AccountId, strings.Repeat("ж", 255))
}

func TestMessageService_GetAllMessages(t *testing.T) {
	f := newFixture()

	all, err := f.messages.GetAllMessages()
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)

	acc := f.register(t)
	f.post(t, acc.AccountId, "one")
	f.post(t, acc.AccountId, "two")

	all, err = f.messages.GetAllMessages()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestMessageService_GetMessageById(t *testing.T) {
	f := newFixture()
	acc := f.register(t)
	created := f.post(t, acc.AccountId, TEXT)

	msg, err := f.messages.GetMessageById(created.MessageId)

	require.NoError(t, err)
	require.Equal(t, created.PostedBy, msg.PostedBy)
	require.Equal(t, TEXT, msg.MessageText)
	require.Equal(t, created.MessageId, msg.MessageId)

	msg, err = f.messages.GetMessageById(created.MessageId + 1)

	require.NoError(t, err)
	require.Nil(t, msg)
}

func TestMessageService_DeleteMessage(t *testing.T) {
	f := newFixture()
	acc := f.register(t)
	created := f.post(t, acc.AccountId, TEXT)

	n, err := f.messages.DeleteMessage(created.MessageId)

	require.NoError(t, err)
	require.Equal(t, 1, *n)

	msg, _ := f.messages.GetMessageById(created.MessageId)
	require.Nil(t, msg)
	require.Equal(t, notify.MessageDeleted, f.published.events[len(f.published.events)-1].Type)

	n, err = f.messages.DeleteMessage(created.MessageId)

	require.NoError(t, err)
	require.Nil(t, n)
}

func TestMessageService_UpdateMessage(t *testing.T) {
	f := newFixture()
	acc := f.register(t)
	created := f.post(t, acc.AccountId, TEXT)

	n, err := f.messages.UpdateMessage(created.MessageId, &model.Message{MessageText: "updated text", PostedBy: 999, MessageId: 999})

	require.NoError(t, err)
	require.Equal(t, 1, *n)

	msg, _ := f.messages.GetMessageById(created.MessageId)
	require.Equal(t, "updated text", msg.MessageText)
	require.Equal(t, created.MessageId, msg.MessageId)
	require.Equal(t, created.PostedBy, msg.PostedBy)
	require.Equal(t, created.TimePostedEpoch, msg.TimePostedEpoch)
	require.Equal(t, notify.MessageUpdated, f.published.events[len(f.published.events)-1].Type)
}

func TestMessageService_UpdateMessageValidation(t *testing.T) {
	f := newFixture()
	acc := f.register(t)
	created := f.post(t, acc.AccountId, TEXT)

	_, err := f.messages.UpdateMessage(created.MessageId, nil)
	requireKind(t, err, MessageNotFound, "Message and message text cannot be null")

	_, err = f.messages.UpdateMessage(created.MessageId+1, &model.Message{MessageText: "fine"})
	requireKind(t, err, MessageNotFound, "Message Not Found")

	//missing message is reported before blank text
	_, err = f.messages.UpdateMessage(created.MessageId+1, &model.Message{MessageText: ""})
	requireKind(t, err, MessageNotFound, "Message Not Found")

	_, err = f.messages.UpdateMessage(created.MessageId, &model.Message{MessageText: ""})
	requireKind(t, err, MessageValidation, "Message cannot be blank")

	_, err = f.messages.UpdateMessage(created.MessageId, &model.Message{MessageText: uniuri.NewLen(256)})
	requireKind(t, err, MessageValidation, "Message too long. Message should be under 255 characters")

	msg, _ := f.messages.GetMessageById(created.MessageId)
	require.Equal(t, TEXT, msg.MessageText)
}

func TestMessageService_GetMessagesByUser(t *testing.T) {
	f := newFixture()
	acc := f.register(t)

	msgs, err := f.messages.GetMessagesByUser(acc.AccountId)
	require.NoError(t, err)
	require.NotNil(t, msgs)
	require.Empty(t, msgs)

	f.post(t, acc.AccountId, "one")
	other, _ := f.accounts.RegisterUser(&model.Account{Username: "other", Password: PASSWORD})
	f.post(t, other.AccountId, "two")

	msgs, err = f.messages.GetMessagesByUser(acc.AccountId)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "one", msgs[0].MessageText)

	msgs, err = f.messages.GetMessagesByUser(12345)
	require.NoError(t, err)
	require.NotNil(t, msgs)
	require.Empty(t, msgs)
}

func TestMessageService_NilPublisher(t *testing.T) {
	store := memdao.New()
	s := NewMessageService(store.Messages(), store.Accounts(), nil)
	acc := &model.Account{Username: USERNAME, Password: PASSWORD}
	require.NoError(t, store.Accounts().Create(acc))

	_, err := s.CreateMessage(&model.Message{PostedBy: acc.AccountId, MessageText: TEXT})

	require.NoError(t, err)
}

func TestMessageService_StorageErrors(t *testing.T) {
	s := NewMessageService(failingMessageDao{}, failingAccountDao{}, nil)

	_, err := s.CreateMessage(&model.Message{PostedBy: 1, MessageText: TEXT})
	require.Equal(t, errStorage, err)

	_, err = s.GetAllMessages()
	require.Equal(t, errStorage, err)

	_, err = s.GetMessageById(1)
	require.Equal(t, errStorage, err)

	_, err = s.DeleteMessage(1)
	require.Equal(t, errStorage, err)

	_, err = s.UpdateMessage(1, &model.Message{MessageText: TEXT})
	require.Equal(t, errStorage, err)

	_, err = s.GetMessagesByUser(1)
	require.Equal(t, errStorage, err)
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "DuplicateUsername", DuplicateUsername.String())
	require.Equal(t, "UserNotFound", UserNotFound.String())
	require.Equal(t, "Unknown", ErrorKind(0).String())

	_, ok := KindOf(errors.New("plain"))
	require.False(t, ok)
}

//----------------------mocks------------

type failingAccountDao struct {
}

func (f failingAccountDao) Create(account *model.Account) error {
	return errStorage
}

func (f failingAccountDao) GetOneById(id int) (model.Account, error) {
	return model.Account{}, errStorage
}

func (f failingAccountDao) GetOneByUsername(username string) (model.Account, error) {
	return model.Account{}, errStorage
}

func (f failingAccountDao) GetOneByUsernameAndPassword(username, password string) (model.Account, error) {
	return model.Account{}, errStorage
}

//racingAccountDao sees no account on lookup but a duplicate on insert
type racingAccountDao struct {
	failingAccountDao
}

func (r racingAccountDao) GetOneByUsername(username string) (model.Account, error) {
	return model.Account{}, dao.ErrNotFound
}

func (r racingAccountDao) Create(account *model.Account) error {
	return dao.ErrAlreadyExists
}

type failingMessageDao struct {
}

func (f failingMessageDao) Create(msg *model.Message) error {
	return errStorage
}

func (f failingMessageDao) Update(msg *model.Message) error {
	return errStorage
}

func (f failingMessageDao) GetOneById(id int) (model.Message, error) {
	return model.Message{}, errStorage
}

func (f failingMessageDao) GetAll() ([]model.Message, error) {
	return nil, errStorage
}

func (f failingMessageDao) GetAllByPostedBy(accountId int) ([]model.Message, error) {
	return nil, errStorage
}

func (f failingMessageDao) Delete(id int) error {
	return errStorage
}
