//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/shkotk/musiclib/server/config"
	"github.com/sirupsen/logrus"
)

func initializeApp(cfg config.Config, logger *logrus.Logger) (*app, func(), error) {
	wire.Build(appSet)
	return nil, nil, nil
}
