package dao

import (
	"github.com/dilshat/social-media/model"
)

type MessageDao interface {
	//Create persists message and sets its generated id
	Create(msg *model.Message) error
	//Update overwrites the stored message having msg's id
	Update(msg *model.Message) error
	//GetOneById returns message by id
	GetOneById(id int) (model.Message, error)
	//GetAll returns all messages
	GetAll() ([]model.Message, error)
	//GetAllByPostedBy returns all messages posted by the account with {accountId}
	GetAllByPostedBy(accountId int) ([]model.Message, error)
	//Delete removes message by id
	Delete(id int) error
}

func NewMessageDao(db Db) MessageDao {
	return &messageDao{db: db}
}

type messageDao struct {
	db Db
}

func (d messageDao) Create(msg *model.Message) error {
	return translate(d.db.Save(msg))
}

func (d messageDao) Update(msg *model.Message) error {
	if msg.MessageId == 0 {
		return ErrNotFound
	}
	return translate(d.db.Save(msg))
}

func (d messageDao) GetOneById(id int) (msg model.Message, err error) {
	err = translate(d.db.One("MessageId", id, &msg))
	return
}

func (d messageDao) GetAll() ([]model.Message, error) {
	messages := []model.Message{}
	err := d.db.All(&messages)
	return messages, translate(err)
}

func (d messageDao) GetAllByPostedBy(accountId int) ([]model.Message, error) {
	messages := []model.Message{}
	err := translate(d.db.Find("PostedBy", accountId, &messages))
	if err == ErrNotFound {
		return []model.Message{}, nil
	}
	return messages, err
}

func (d messageDao) Delete(id int) error {
	var msg model.Message
	err := d.db.One("MessageId", id, &msg)
	if err != nil {
		return translate(err)
	}
	return translate(d.db.DeleteStruct(&msg))
}
