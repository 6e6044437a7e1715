package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shkotk/musiclib/server/config"
	"github.com/shkotk/musiclib/server/controllers"
	"github.com/shkotk/musiclib/server/middleware"
	"github.com/shkotk/musiclib/server/templates"
	"github.com/sirupsen/logrus"
)

func New(
	cfg config.Config,
	logger *logrus.Logger,
	songController *controllers.SongController,
) (*gin.Engine, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetTrustedProxies(nil)
	router.HandleMethodNotAllowed = true
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.Logger(logger), middleware.Recovery(logger))

	router.GET("/", songController.AverageDuration)

	return router, nil
}
