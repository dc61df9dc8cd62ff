package controller

import (
	"net/http"

	"github.com/dilshat/social-media/model"
	"github.com/dilshat/social-media/service"
	"github.com/labstack/echo/v4"
)

const (
	MessageIdParam = "message_id"
	AccountIdParam = "account_id"
)

// CreateMessage godoc
// @Summary Create message
// @Accept json
// @Produce json
// @Param message body model.Message true "Message"
// @Success 200 {object} model.Message
// @Failure 400 "error description"
// @Router /messages [post]
func GetCreateMessageFunc(srv service.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var msg *model.Message
		if err := decodeBody(c, &msg); err != nil {
			return c.String(http.StatusBadRequest, invalidPayload)
		}

		created, err := srv.CreateMessage(msg)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, created)
	}
}

// AllMessages godoc
// @Summary List messages
// @Produce json
// @Success 200 {array} model.Message
// @Router /messages [get]
func GetAllMessagesFunc(srv service.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		messages, err := srv.GetAllMessages()
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, messages)
	}
}

// Message godoc
// @Summary Get message
// @Description Empty body when there is no such message
// @Produce json
// @Param message_id path int true "Message id"
// @Success 200 {object} model.Message
// @Router /messages/{message_id} [get]
func GetMessageFunc(srv service.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathId(c, MessageIdParam)
		if !ok {
			return c.String(http.StatusBadRequest, "Invalid message id "+c.Param(MessageIdParam))
		}

		msg, err := srv.GetMessageById(id)
		if err != nil {
			return respondError(c, err)
		}

		return respond(c, msg, msg != nil)
	}
}

// DeleteMessage godoc
// @Summary Delete message
// @Description Returns 1 when deleted, empty body when there was no such message
// @Produce json
// @Param message_id path int true "Message id"
// @Success 200 {integer} integer
// @Router /messages/{message_id} [delete]
func GetDeleteMessageFunc(srv service.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathId(c, MessageIdParam)
		if !ok {
			return c.String(http.StatusBadRequest, "Invalid message id "+c.Param(MessageIdParam))
		}

		deleted, err := srv.DeleteMessage(id)
		if err != nil {
			return respondError(c, err)
		}

		return respond(c, deleted, deleted != nil)
	}
}

// UpdateMessage godoc
// @Summary Update message text
// @Accept json
// @Produce json
// @Param message_id path int true "Message id"
// @Param message body model.Message true "Message carrying new messageText"
// @Success 200 {integer} integer
// @Failure 400 "error description"
// @Router /messages/{message_id} [patch]
func GetUpdateMessageFunc(srv service.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathId(c, MessageIdParam)
		if !ok {
			return c.String(http.StatusBadRequest, "Invalid message id "+c.Param(MessageIdParam))
		}

		var msg *model.Message
		if err := decodeBody(c, &msg); err != nil {
			return c.String(http.StatusBadRequest, invalidPayload)
		}

		updated, err := srv.UpdateMessage(id, msg)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, updated)
	}
}

// AccountMessages godoc
// @Summary List messages of account
// @Produce json
// @Param account_id path int true "Account id"
// @Success 200 {array} model.Message
// @Router /accounts/{account_id}/messages [get]
func GetAccountMessagesFunc(srv service.MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathId(c, AccountIdParam)
		if !ok {
			return c.String(http.StatusBadRequest, "Invalid account id "+c.Param(AccountIdParam))
		}

		messages, err := srv.GetMessagesByUser(id)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, messages)
	}
}
