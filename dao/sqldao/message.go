package sqldao

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/model"
)

var messageColumns = []string{"message_id", "posted_by", "message_text", "time_posted_epoch"}

func NewMessageDao(db *sql.DB) dao.MessageDao {
	return &messageDao{db: db}
}

type messageDao struct {
	db *sql.DB
}

func (d messageDao) Create(msg *model.Message) error {
	res, err := sq.Insert("message").
		Columns("posted_by", "message_text", "time_posted_epoch").
		Values(msg.PostedBy, msg.MessageText, msg.TimePostedEpoch).
		RunWith(d.db).Exec()
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	msg.MessageId = int(id)
	return nil
}

func (d messageDao) Update(msg *model.Message) error {
	res, err := sq.Update("message").
		Set("posted_by", msg.PostedBy).
		Set("message_text", msg.MessageText).
		Set("time_posted_epoch", msg.TimePostedEpoch).
		Where(sq.Eq{"message_id": msg.MessageId}).
		RunWith(d.db).Exec()
	if err != nil {
		return translate(err)
	}
	return affectedOne(res)
}

func (d messageDao) GetOneById(id int) (model.Message, error) {
	var msg model.Message
	err := sq.Select(messageColumns...).
		From("message").
		Where(sq.Eq{"message_id": id}).
		RunWith(d.db).QueryRow().
		Scan(&msg.MessageId, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch)
	if err != nil {
		return model.Message{}, translate(err)
	}
	return msg, nil
}

func (d messageDao) GetAll() ([]model.Message, error) {
	return d.list(sq.Select(messageColumns...).From("message"))
}

func (d messageDao) GetAllByPostedBy(accountId int) ([]model.Message, error) {
	return d.list(sq.Select(messageColumns...).From("message").Where(sq.Eq{"posted_by": accountId}))
}

func (d messageDao) Delete(id int) error {
	res, err := sq.Delete("message").
		Where(sq.Eq{"message_id": id}).
		RunWith(d.db).Exec()
	if err != nil {
		return translate(err)
	}
	return affectedOne(res)
}

func (d messageDao) list(query sq.SelectBuilder) ([]model.Message, error) {
	rows, err := query.OrderBy("message_id").RunWith(d.db).Query()
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.MessageId, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
