package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/auralabs/aura/internal/app"
	"github.com/auralabs/aura/internal/config"
	"github.com/auralabs/aura/internal/genai"
	"github.com/auralabs/aura/internal/playback"
	"github.com/auralabs/aura/internal/store"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	var st store.Store
	var mgr *store.Manager
	if cfg.DataPath != "" {
		mgr, err = store.OpenPath(cfg.DataPath)
	} else {
		mgr, err = store.Open()
	}
	if err != nil {
		return err
	}
	st = mgr

	var recommender genai.Service
	if cfg.HasGenAIConfig() {
		recommender = genai.NewClient(cfg.GetGenAIConfig())
	} else {
		log.Info("genai api key not set, AI DJ disabled")
	}

	// The real media shell attaches through playback.Service; until one
	// does, the in-memory implementation keeps the session runnable.
	player := playback.NewMock()

	session := app.New(cfg, st, recommender, player, log)
	if err := session.Start(); err != nil {
		session.Close()
		return err
	}
	defer session.Close()

	log.WithFields(logrus.Fields{
		"tracks":    len(session.Library("")),
		"playlists": len(session.Playlists()),
	}).Info("session started")

	if t := session.CurrentTrack(); t != nil {
		log.WithFields(logrus.Fields{
			"title":  t.Title,
			"artist": t.Artist,
		}).Info("queue cursor")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
