package entities

import "time"

// Book is a catalog item. Reviews are removed together with the book.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:512;not null" json:"title"`
	Author          string    `gorm:"index;size:256;not null" json:"author"`
	PublicationYear int       `gorm:"index" json:"publication_year"`
	ISBN            string    `gorm:"size:20" json:"isbn,omitempty"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	Reviews         []Review  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Review is user feedback owned by exactly one Book.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"index;not null" json:"book_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Reviewer  string    `gorm:"size:256" json:"reviewer,omitempty"`
	Rating    int       `json:"rating,omitempty"` // 1-5, 0 when not given
	CreatedAt time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (Review) TableName() string {
	return "reviews"
}

// BookMutableColumns lists the columns a whole-record update may overwrite.
// Identifier and timestamps are managed by the store.
var BookMutableColumns = []string{"title", "author", "publication_year", "isbn", "description"}
