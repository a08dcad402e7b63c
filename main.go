package main

import (
	"github.com/sirupsen/logrus"

	"Sketchpad/internal/board"
	"Sketchpad/internal/config"
	"Sketchpad/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	config.SetupLogging(cfg)

	b, err := board.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to create board: ", err)
	}

	w, h := b.Size()
	logrus.WithFields(logrus.Fields{
		"session": b.Session().ID,
		"width":   w,
		"height":  h,
	}).Info("Starting sketchpad")
	ui.RunApp(cfg, b)

	logrus.WithFields(logrus.Fields{
		"session":  b.Session().ID,
		"gestures": b.Session().Gestures(),
	}).Info("Sketchpad closed")
}
