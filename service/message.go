package service

import (
	"errors"
	"time"

	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/model"
	"github.com/dilshat/social-media/notify"
	"github.com/dilshat/social-media/util"
	"go.uber.org/zap"
)

const (
	maxMessageLen = 255

	msgNullMessage     = "message cannot be null"
	msgNullUpdate      = "Message and message text cannot be null"
	msgInvalidPoster   = "Message not posted by valid user"
	msgBlankMessage    = "Message cannot be blank"
	msgTooLong         = "Message too long. Message should be under 255 characters"
	msgMessageNotFound = "Message Not Found"
)

type MessageService interface {
	CreateMessage(msg *model.Message) (*model.Message, error)
	GetAllMessages() ([]model.Message, error)
	//GetMessageById returns nil when there is no such message
	GetMessageById(id int) (*model.Message, error)
	//DeleteMessage returns the number of deleted rows, or nil when there was nothing to delete
	DeleteMessage(id int) (*int, error)
	//UpdateMessage replaces the text of message {id} and returns the number of updated rows
	UpdateMessage(id int, msg *model.Message) (*int, error)
	GetMessagesByUser(accountId int) ([]model.Message, error)
}

type messageService struct {
	messageDao dao.MessageDao
	accountDao dao.AccountDao
	publisher  notify.Publisher
	now        func() time.Time
}

// NewMessageService creates message service; publisher may be nil
func NewMessageService(messageDao dao.MessageDao, accountDao dao.AccountDao, publisher notify.Publisher) MessageService {
	return &messageService{
		messageDao: messageDao,
		accountDao: accountDao,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s messageService) CreateMessage(msg *model.Message) (*model.Message, error) {
	if msg == nil {
		return nil, NewError(MessageNotFound, msgNullMessage)
	}

	_, err := s.accountDao.GetOneById(msg.PostedBy)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, NewError(MessageValidation, msgInvalidPoster)
	}
	if err != nil {
		zap.L().Error("Error looking up poster", zap.Error(err))
		return nil, err
	}

	if err := validateText(msg.MessageText); err != nil {
		return nil, err
	}

	created := model.Message{
		PostedBy:        msg.PostedBy,
		MessageText:     msg.MessageText,
		TimePostedEpoch: msg.TimePostedEpoch,
	}
	if created.TimePostedEpoch == 0 {
		created.TimePostedEpoch = s.now().Unix()
	}

	if err := s.messageDao.Create(&created); err != nil {
		zap.L().Error("Error creating message", zap.Error(err))
		return nil, err
	}

	s.publish(notify.MessageCreated, created)

	return &created, nil
}

func (s messageService) GetAllMessages() ([]model.Message, error) {
	messages, err := s.messageDao.GetAll()
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}

func (s messageService) GetMessageById(id int) (*model.Message, error) {
	msg, err := s.messageDao.GetOneById(id)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s messageService) DeleteMessage(id int) (*int, error) {
	msg, err := s.messageDao.GetOneById(id)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = s.messageDao.Delete(id)
	if errors.Is(err, dao.ErrNotFound) {
		//deleted concurrently
		return nil, nil
	}
	if err != nil {
		zap.L().Error("Error deleting message", zap.Error(err))
		return nil, err
	}

	s.publish(notify.MessageDeleted, msg)

	return rows(1), nil
}

func (s messageService) UpdateMessage(id int, msg *model.Message) (*int, error) {
	if msg == nil {
		return nil, NewError(MessageNotFound, msgNullUpdate)
	}

	existing, err := s.messageDao.GetOneById(id)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, NewError(MessageNotFound, msgMessageNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := validateText(msg.MessageText); err != nil {
		return nil, err
	}

	existing.MessageText = msg.MessageText
	err = s.messageDao.Update(&existing)
	if errors.Is(err, dao.ErrNotFound) {
		return nil, NewError(MessageNotFound, msgMessageNotFound)
	}
	if err != nil {
		zap.L().Error("Error updating message", zap.Error(err))
		return nil, err
	}

	s.publish(notify.MessageUpdated, existing)

	return rows(1), nil
}

func (s messageService) GetMessagesByUser(accountId int) ([]model.Message, error) {
	messages, err := s.messageDao.GetAllByPostedBy(accountId)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}

func (s messageService) publish(eventType string, msg model.Message) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(notify.Event{Type: eventType, Message: msg})
}

func validateText(text string) error {
	if util.IsBlank(text) {
		return NewError(MessageValidation, msgBlankMessage)
	}
	if util.Length(text) > maxMessageLen {
		return NewError(MessageValidation, msgTooLong)
	}
	return nil
}

func rows(n int) *int {
	return &n
}
