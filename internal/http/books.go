package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database/books"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// CreateBook handles POST /books/
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req BookCreate
	if !bindJSON(c, &req) {
		return
	}

	book, err := controller.store.CreateBook(c.Request.Context(), req.toInput())
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// ListBooks handles GET /books/?author=&publication_year=
func (controller *BooksController) ListBooks(c *gin.Context) {
	var query ListBooksQuery
	if !bindQuery(c, &query) {
		return
	}

	result, err := controller.store.ListBooks(c.Request.Context(), books.BookFilter{
		Author:          query.Author,
		PublicationYear: query.PublicationYear,
	})
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBook handles GET /books/:id/
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBook(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook handles PUT /books/:id/
// The body replaces every mutable field; id and created_at are kept.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookCreate
	if !bindJSON(c, &req) {
		return
	}

	book, err := controller.store.UpdateBook(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondStoreError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /books/:id/
// Reviews of the book are removed with it.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteBook(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "delete book")
		return
	}
	respondSuccess(c, "Book deleted successfully")
}
