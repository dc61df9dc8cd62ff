package controller

import (
	"net/http"

	"github.com/dilshat/social-media/model"
	"github.com/dilshat/social-media/service"
	"github.com/dilshat/social-media/service/dto"
	"github.com/labstack/echo/v4"
)

// Register godoc
// @Summary Register account
// @Description Creates an account. Blank username or a password shorter than 5 characters is ignored with an empty 200
// @Accept json
// @Produce json
// @Param account body model.Account true "Account"
// @Success 200 {object} model.Account
// @Failure 409 "Username already exists"
// @Router /register [post]
func GetRegisterFunc(srv service.AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var account *model.Account
		if err := decodeBody(c, &account); err != nil {
			return c.String(http.StatusBadRequest, invalidPayload)
		}

		registered, err := srv.RegisterUser(account)
		if err != nil {
			return respondError(c, err)
		}

		return respond(c, registered, registered != nil)
	}
}

// Login godoc
// @Summary Login
// @Description Returns the account matching username and password
// @Accept json
// @Produce json
// @Param credentials body model.Account true "Credentials"
// @Success 200 {object} model.Account
// @Failure 401 "error description"
// @Router /login [post]
func GetLoginFunc(srv service.AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		credentials := new(dto.Credentials)
		if err := decodeBody(c, credentials); err != nil {
			return c.String(http.StatusBadRequest, invalidPayload)
		}

		account, err := srv.LoginUser(credentials.Username, credentials.Password)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, account)
	}
}
