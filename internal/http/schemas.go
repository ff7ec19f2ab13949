package http

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookshelf/internal/database/books"
)

// BookCreate is the request body for creating or replacing a book.
type BookCreate struct {
	Title           string `json:"title" binding:"required,max=512"`
	Author          string `json:"author" binding:"required,max=256"`
	PublicationYear int    `json:"publication_year" binding:"required,gt=0"`
	ISBN            string `json:"isbn" binding:"omitempty,max=20"`
	Description     string `json:"description"`
}

func (b BookCreate) toInput() books.BookInput {
	return books.BookInput{
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		Description:     b.Description,
	}
}

// ReviewCreate is the request body for submitting a review.
type ReviewCreate struct {
	Text     string `json:"text" binding:"required"`
	Reviewer string `json:"reviewer" binding:"omitempty,max=256"`
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

func (r ReviewCreate) toInput() books.ReviewInput {
	return books.ReviewInput{
		Text:     r.Text,
		Reviewer: r.Reviewer,
		Rating:   r.Rating,
	}
}

// ListBooksQuery holds the optional book list filters.
type ListBooksQuery struct {
	Author          string `form:"author"`
	PublicationYear int    `form:"publication_year"`
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var registerFieldNames sync.Once

// useWireFieldNames makes validation errors report json/form names instead
// of Go struct field names.
func useWireFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	})
}

// bindJSON decodes and validates the request body, responding with 422 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondValidationError(c, "invalid request body", validationDetails(err, "body"))
		return false
	}
	return true
}

// bindQuery decodes and validates query parameters, responding with 422 on failure.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondValidationError(c, "invalid query parameters", validationDetails(err, "query"))
		return false
	}
	return true
}

func validationDetails(err error, location string) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: describeFieldError(fe)})
		}
		return details
	}
	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: location, Message: "is required"}}
	}
	return []FieldError{{Field: location, Message: err.Error()}}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
