// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, driver selection, migrations
//	└── books/           # Book and review operations
//
// # Usage
//
//	db, err := database.Open(cfg.Database, logger)
//	repo := books.NewRepository(db)
//
//	book, err := repo.CreateBook(ctx, books.BookInput{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965})
//	reviews, err := repo.ListReviews(ctx, book.ID)
//
// Every repository method binds its statements to the caller's context, so a
// request that goes away cancels its queries. Mutating methods run inside
// db.Transaction, which commits on success and rolls back on error or panic.
//
// # Drivers
//
// sqlite (default) is opened with foreign keys enabled. mysql is selected with
// DATABASE_DRIVER=mysql and DATABASE_DSN.
package database
