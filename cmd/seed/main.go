package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/oggyb/portfolio-inbox/internal/config"
	"github.com/oggyb/portfolio-inbox/internal/db/gormdb"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/logger"
	contactgorm "github.com/oggyb/portfolio-inbox/internal/repository/gorm/contact"
	"go.uber.org/zap"
)

var (
	names = []string{"Ada Lovelace", "Alan Turing", "Grace Hopper", "Linus Torvalds", "Margaret Hamilton", "Ken Thompson"}
	notes = []string{
		"Loved your portfolio, are you open to freelance work?",
		"We have a backend role that looks like a great fit for you.",
		"Quick question about the caching layer in your last project.",
		"Would you be interested in speaking at our meetup next month?",
		"Your blog post on graceful shutdown helped a lot, thanks!",
	}
)

func main() {
	count := flag.Int("n", 20, "number of contact messages to insert")
	flag.Parse()

	ctx := context.Background()

	// Load application configuration (DB, Redis, etc.) from env/.env.
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	log = log.Named("seed")
	defer func() { _ = log.Sync() }()

	gdb, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	defer func() { _ = gdb.Close() }()

	if err := gdb.Ping(ctx); err != nil {
		log.Fatal("database unreachable", zap.Error(err))
	}
	log.Info("connected to database", zap.String("db", cfg.DB.Name))

	if err := contactgorm.Migrate(gdb); err != nil {
		log.Fatal("auto migrate", zap.Error(err))
	}
	log.Info("contact_messages table is up to date")

	repo := contactgorm.NewRepository(gdb)

	for i := 0; i < *count; i++ {
		name := names[rand.Intn(len(names))]
		c, err := contact.NewContact(
			name,
			fmt.Sprintf("seed%d@example.com", i+1),
			notes[rand.Intn(len(notes))],
			contact.ClientMeta{IPAddress: "127.0.0.1", UserAgent: "seed"},
		)
		if err != nil {
			log.Fatal("build contact", zap.Int("n", i+1), zap.Error(err))
		}

		// Spread the rows over every status so the inbox filters have data.
		c.Status = contact.Statuses[i%len(contact.Statuses)]

		if _, err := repo.Import(ctx, c); err != nil {
			log.Fatal("insert contact", zap.Int("n", i+1), zap.Error(err))
		}
		log.Debug("created contact", zap.String("id", c.ID), zap.String("status", string(c.Status)))
	}

	log.Info("seed complete", zap.Int("inserted", *count))
}
