package container

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/config"
	authorhandler "bookcatalog-backend/internal/domains/author/handler"
	authorrepo "bookcatalog-backend/internal/domains/author/repository"
	authorservice "bookcatalog-backend/internal/domains/author/service"
	bookhandler "bookcatalog-backend/internal/domains/book/handler"
	bookrepo "bookcatalog-backend/internal/domains/book/repository"
	bookservice "bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/infrastructure/database"
	pgdb "bookcatalog-backend/pkg/database"
	"bookcatalog-backend/pkg/logger"
)

// Container wires every component of the application together:
// config -> database -> repositories -> services -> handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	txManager := pgdb.NewTxManager(db.Pool)

	authorRepository := authorrepo.NewPostgresRepository()
	bookRepository := bookrepo.NewPostgresRepository()

	authorService := authorservice.NewAuthorService(authorRepository, db.Pool)
	bookService := bookservice.NewBookService(bookRepository, authorService, db.Pool, txManager)

	return &Container{
		Config:        cfg,
		DB:            db,
		AuthorHandler: authorhandler.NewAuthorHandler(authorService, bookService),
		BookHandler:   bookhandler.NewBookHandler(bookService),
	}, nil
}

// Cleanup releases long-lived resources. Safe to call once during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("Database connection closed", nil)
	}
}
