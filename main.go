package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dilshat/social-media/controller"
	"github.com/dilshat/social-media/dao"
	"github.com/dilshat/social-media/dao/memdao"
	"github.com/dilshat/social-media/dao/sqldao"
	_ "github.com/dilshat/social-media/docs"
	"github.com/dilshat/social-media/log"
	"github.com/dilshat/social-media/notify"
	"github.com/dilshat/social-media/service"
	"github.com/dilshat/social-media/util"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Social media HTTP API
// @description Accounts and messages of a minimal social media backend

// @contact.name Dilshat Aliev
// @contact.email dilshat.aliev@gmail.com

var envErr error

func init() {
	envErr = godotenv.Load()
}

type stores struct {
	accounts dao.AccountDao
	messages dao.MessageDao
	close    func() error
}

func main() {
	cleanup, err := log.Init(util.GetEnvAsBool("LOG_DEBUG", false))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer cleanup()

	log.WarnIfErr("Could not load .env", envErr)

	//open storage
	st, err := openStores(util.GetEnv("DB_DRIVER", "storm"), util.GetEnv("DB_PATH", "social.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { log.ErrIfErr("Error closing db", st.close()) }()

	//start webhook notifier
	var publisher notify.Publisher
	if webhook := util.GetEnv("WEB_HOOK", ""); webhook != "" {
		notifier := notify.NewNotifier(webhook, util.GetEnvAsInt("WEB_HOOK_PER_SEC", 10))
		notifier.Start()
		defer notifier.Stop()
		publisher = notifier
	}

	accountService := service.NewAccountService(st.accounts)
	messageService := service.NewMessageService(st.messages, st.accounts, publisher)

	e := newServer(util.GetEnv("BODY_LIMIT", "2K"))
	bindRoutes(e, accountService, messageService)

	shutdown := make(chan struct{})
	go func() {
		defer close(shutdown)
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.ErrIfErr("Error shutting down http server", e.Shutdown(ctx))
	}()

	//start http server
	port := util.GetEnv("HTTP_PORT", "8080")
	zap.L().Info("Starting http server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	//in-flight requests finish before the deferred notifier stop
	<-shutdown
}

func openStores(driver, path string) (stores, error) {
	switch driver {
	case "storm":
		dbClient, err := dao.GetClient(path)
		if err != nil {
			return stores{}, err
		}
		return stores{
			accounts: dao.NewAccountDao(dbClient),
			messages: dao.NewMessageDao(dbClient),
			close:    dbClient.Close,
		}, nil
	case "sqlite":
		db, err := sqldao.Open(path)
		if err != nil {
			return stores{}, err
		}
		return stores{
			accounts: sqldao.NewAccountDao(db),
			messages: sqldao.NewMessageDao(db),
			close:    db.Close,
		}, nil
	case "memory":
		store := memdao.New()
		return stores{
			accounts: store.Accounts(),
			messages: store.Messages(),
			close:    func() error { return nil },
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

func newServer(bodyLimit string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(controller.RequestLogger())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	return e
}

func bindRoutes(e *echo.Echo, accountService service.AccountService, messageService service.MessageService) {

	e.POST("/register", controller.GetRegisterFunc(accountService))
	e.POST("/login", controller.GetLoginFunc(accountService))

	e.POST("/messages", controller.GetCreateMessageFunc(messageService))
	e.GET("/messages", controller.GetAllMessagesFunc(messageService))
	e.GET("/messages/:"+controller.MessageIdParam, controller.GetMessageFunc(messageService))
	e.DELETE("/messages/:"+controller.MessageIdParam, controller.GetDeleteMessageFunc(messageService))
	e.PATCH("/messages/:"+controller.MessageIdParam, controller.GetUpdateMessageFunc(messageService))

	e.GET("/accounts/:"+controller.AccountIdParam+"/messages", controller.GetAccountMessagesFunc(messageService))
}
