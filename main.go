package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossclues/internal/config"
	"github.com/robalobadob/crossclues/internal/db"
	"github.com/robalobadob/crossclues/internal/httpserver"
	"github.com/robalobadob/crossclues/internal/results"
	"github.com/robalobadob/crossclues/internal/store"
	"github.com/robalobadob/crossclues/internal/words"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if cfg.InsecureSecret() {
		log.Warn().Msg("JWT_SECRET not set; using the development secret")
	}

	if err := words.Init(cfg.WordsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer sqlDB.Close()
	if err := db.Migrate(sqlDB); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, results.NewStore(sqlDB), cfg)
	log.Info().Str("port", cfg.Port).Int("words", words.Default().Size()).Msg("starting crossclues server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
