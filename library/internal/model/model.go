package model

import (
	"strings"
	"time"
)

type Status string

const (
	StatusBorrowed Status = "BORROWED"
	StatusReturned Status = "RETURNED"
)

// Date is a day-precision timestamp serialized as yyyy-mm-dd.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type Author struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Biography   string `json:"biography,omitempty" db:"biography"`
	Nationality string `json:"nationality,omitempty" db:"nationality"`
	Books       []Book `json:"books,omitempty" db:"-"`
}

type Book struct {
	ID              string         `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Category        string         `json:"category" db:"category"`
	PublishingYear  int            `json:"publishingYear" db:"publishing_year"`
	ISBN            string         `json:"isbn,omitempty" db:"isbn"`
	TotalCopies     int            `json:"totalCopies" db:"total_copies"`
	AvailableCopies int            `json:"availableCopies" db:"available_copies"`
	AuthorID        string         `json:"authorId,omitempty" db:"-"`
	Author          *Author        `json:"author,omitempty" db:"-"`
	BorrowedBooks   []BorrowedBook `json:"borrowedBooks,omitempty" db:"-"`
}

type Member struct {
	ID            string         `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Email         string         `json:"email,omitempty" db:"email"`
	Phone         string         `json:"phone,omitempty" db:"phone"`
	Address       string         `json:"address,omitempty" db:"address"`
	BorrowedBooks []BorrowedBook `json:"borrowedBooks,omitempty" db:"-"`
}

type BorrowedBook struct {
	ID         string  `json:"id" db:"id"`
	BookID     string  `json:"bookId" db:"book_id"`
	MemberID   string  `json:"memberId" db:"member_id"`
	BorrowDate Date    `json:"borrowDate" db:"borrow_date"`
	DueDate    *Date   `json:"dueDate" db:"due_date"`
	ReturnDate *Date   `json:"returnDate" db:"return_date"`
	Status     Status  `json:"status" db:"status"`
	Book       *Book   `json:"book,omitempty" db:"-"`
	Member     *Member `json:"member,omitempty" db:"-"`
}

// Ref carries a bare foreign id, so clients may send either
// {"authorId": id} or a nested {"author": {"id": id}}.
type Ref struct {
	ID string `json:"id"`
}

type AuthorRequest struct {
	Name        string `json:"name" validate:"required"`
	Biography   string `json:"biography"`
	Nationality string `json:"nationality"`
}

type BookRequest struct {
	Title           string `json:"title" validate:"required"`
	Category        string `json:"category" validate:"required"`
	PublishingYear  int    `json:"publishingYear" validate:"required"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"totalCopies" validate:"gte=0"`
	AvailableCopies *int   `json:"availableCopies" validate:"omitempty,gte=0"`
	AuthorID        string `json:"authorId"`
	Author          *Ref   `json:"author"`
}

// Normalize folds a nested author reference into AuthorID.
func (r *BookRequest) Normalize() {
	if r.AuthorID == "" && r.Author != nil {
		r.AuthorID = r.Author.ID
	}
}

type MemberRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BorrowRequest struct {
	BookID     string `json:"bookId" validate:"required"`
	MemberID   string `json:"memberId" validate:"required"`
	BorrowDate Date   `json:"borrowDate" validate:"required"`
	DueDate    *Date  `json:"dueDate"`
	Book       *Ref   `json:"book" validate:"-"`
	Member     *Ref   `json:"member" validate:"-"`
}

func (r *BorrowRequest) Normalize() {
	if r.BookID == "" && r.Book != nil {
		r.BookID = r.Book.ID
	}
	if r.MemberID == "" && r.Member != nil {
		r.MemberID = r.Member.ID
	}
}

// LoanUpdateRequest replaces every mutable field of a loan record.
type LoanUpdateRequest struct {
	BookID     string `json:"bookId" validate:"required"`
	MemberID   string `json:"memberId" validate:"required"`
	BorrowDate Date   `json:"borrowDate" validate:"required"`
	DueDate    *Date  `json:"dueDate"`
	ReturnDate *Date  `json:"returnDate"`
	Status     Status `json:"status" validate:"omitempty,oneof=BORROWED RETURNED"`
	Book       *Ref   `json:"book" validate:"-"`
	Member     *Ref   `json:"member" validate:"-"`
}

func (r *LoanUpdateRequest) Normalize() {
	if r.BookID == "" && r.Book != nil {
		r.BookID = r.Book.ID
	}
	if r.MemberID == "" && r.Member != nil {
		r.MemberID = r.Member.ID
	}
	if r.Status == "" {
		if r.ReturnDate != nil {
			r.Status = StatusReturned
		} else {
			r.Status = StatusBorrowed
		}
	}
}
