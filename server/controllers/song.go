package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shkotk/musiclib/server/repositories"
	"github.com/shkotk/musiclib/server/services"
	"github.com/shkotk/musiclib/server/templates"
	"github.com/sirupsen/logrus"
)

type SongController struct {
	logger         *logrus.Logger
	songRepository *repositories.SongRepository
	debug          bool
}

func NewSongController(
	logger *logrus.Logger,
	songRepository *repositories.SongRepository,
	debug bool,
) *SongController {
	return &SongController{logger, songRepository, debug}
}

type averageDurationPage struct {
	// Nil when there are no songs with duration.
	AverageDuration *float64
}

func (c *SongController) AverageDuration(ctx *gin.Context) {
	avg, err := c.songRepository.AverageDuration(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		c.respondError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, templates.AverageDuration, averageDurationPage{
		AverageDuration: services.RoundAverage(avg),
	})
}

// Development mode exposes error details, release mode only the status text.
func (c *SongController) respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	if c.debug {
		ctx.String(status, "%s: %v", http.StatusText(status), err)
	} else {
		ctx.String(status, "%s", http.StatusText(status))
	}
	ctx.Abort()
}
