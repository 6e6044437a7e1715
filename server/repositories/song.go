package repositories

import (
	"context"
	"database/sql"

	"github.com/shkotk/musiclib/server/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SongRepository struct {
	logger *logrus.Logger
	db     *gorm.DB
}

func NewSongRepository(logger *logrus.Logger, db *gorm.DB) *SongRepository {
	return &SongRepository{logger, db}
}

// Returns arithmetic mean of all song durations or nil if there is nothing
// to average. The query holds one pooled connection and returns it on exit.
func (r *SongRepository) AverageDuration(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.
			Model(&models.Song{}).
			Select("AVG(duration)").
			Scan(&avg).
			Error
	})
	if err != nil {
		r.logger.WithError(err).
			WithFields(logrus.Fields{
				"action": "average_song_duration",
				"table":  models.Song{}.TableName(),
			}).
			Error()
		return nil, err
	}

	if !avg.Valid {
		return nil, nil
	}

	return &avg.Float64, nil
}
