package repositories

import (
	"context"

	"github.com/shkotk/musiclib/server/test"
	"github.com/sirupsen/logrus"
)

func (s *repositorySuite) TestSong_AverageDuration_CancelledContext_ReturnsError() {
	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	avg, err := songRepository.AverageDuration(ctx)

	s.Nil(avg)
	s.ErrorIs(err, context.Canceled)
}

func (s *repositorySuite) TestSong_AverageDuration_EmptySongsTable_ReturnsNil() {
	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	avg, err := songRepository.AverageDuration(context.Background())

	s.Nil(err)
	s.Nil(avg)
}

func (s *repositorySuite) TestSong_AverageDuration_OnlyNullDurations_ReturnsNil() {
	test.SeedSongs(s.T(), s.testDB, nil, nil)
	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	avg, err := songRepository.AverageDuration(context.Background())

	s.Nil(err)
	s.Nil(avg)
}

func (s *repositorySuite) TestSong_AverageDuration_PopulatedSongsTable_ReturnsMean() {
	type testCase struct {
		label       string
		durations   []*int
		expectedAvg float64
	}

	cases := []testCase{
		{"three songs", test.Durations(180, 200, 220), 200},
		{"two songs", test.Durations(201, 202), 201.5},
		{"single song", test.Durations(233), 233},
		{"repeating decimal", test.Durations(100, 100, 101), 301.0 / 3},
		{"negative duration", test.Durations(-10, 30), 10},
		{"null duration is ignored", append(test.Durations(100, 300), nil), 200},
	}

	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	for _, tc := range cases {
		s.Run(tc.label, func() {
			s.Require().NoError(s.testDB.Exec(`DELETE FROM "Songs"`).Error)
			test.SeedSongs(s.T(), s.testDB, tc.durations...)

			avg, err := songRepository.AverageDuration(context.Background())

			s.Nil(err)
			s.Require().NotNil(avg)
			s.InDelta(tc.expectedAvg, *avg, 1e-9, "got wrong average for %s", tc.label)
		})
	}
}

func (s *repositorySuite) TestSong_AverageDuration_UsersTableIsIgnored() {
	s.testDB.Exec(`INSERT INTO "Users" (username, email) VALUES ('stanley', 'stanley@example.com')`)
	test.SeedSongs(s.T(), s.testDB, test.Durations(60)...)
	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	avg, err := songRepository.AverageDuration(context.Background())

	s.Nil(err)
	s.Require().NotNil(avg)
	s.Equal(60.0, *avg)
}

func (s *repositorySuite) assertNoConnectionsInUse() {
	sqlDB, err := s.testDB.DB()
	s.Require().NoError(err)
	s.Equal(0, sqlDB.Stats().InUse, "connection was not returned to the pool")
}

func (s *repositorySuite) TestSong_AverageDuration_Success_ReleasesConnection() {
	test.SeedSongs(s.T(), s.testDB, test.Durations(180, 200)...)
	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	_, err := songRepository.AverageDuration(context.Background())

	s.Nil(err)
	s.assertNoConnectionsInUse()
}

// Dropping the table would break PostgreSQL suite teardown, so only SQLite runs it.
func (s *SQLiteTestSuite) TestSong_AverageDuration_QueryError_ReleasesConnection() {
	s.Require().NoError(s.testDB.Exec(`DROP TABLE "Songs"`).Error)
	songRepository := NewSongRepository(logrus.StandardLogger(), s.testDB)

	avg, err := songRepository.AverageDuration(context.Background())

	s.Nil(avg)
	s.ErrorContains(err, "no such table")
	s.assertNoConnectionsInUse()
}
