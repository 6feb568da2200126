package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Role string

const (
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
)

// Date is a calendar day without time of day, rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case []byte:
		t, err := time.Parse(time.DateOnly, string(v))
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}
}

// Address is the structured user address. All four keys are required.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
	State  string `json:"state"`
}

// MissingKeys lists the blank required keys, in schema order.
func (a Address) MissingKeys() []string {
	var missing []string
	for _, kv := range []struct{ key, val string }{
		{"street", a.Street},
		{"city", a.City},
		{"zip", a.Zip},
		{"state", a.State},
	} {
		if strings.TrimSpace(kv.val) == "" {
			missing = append(missing, kv.key)
		}
	}
	return missing
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Address{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.Errorf("cannot scan %T into Address", src)
	}
}

type Book struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Author    string    `json:"author" db:"author"`
	Publisher string    `json:"publisher" db:"publisher"`
	Edition   string    `json:"edition" db:"edition"`
	Year      int       `json:"year" db:"year"`
	ISBN      string    `json:"isbn" db:"isbn"`
	Genre     string    `json:"genre" db:"genre"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BookItem is a catalog row with aggregated copy counts.
type BookItem struct {
	Book
	TotalCopies     int `json:"totalCopies" db:"total_copies"`
	AvailableCopies int `json:"availableCopies" db:"available_copies"`
}

type BookCopy struct {
	ID           int       `json:"id" db:"id"`
	BookID       int       `json:"bookId" db:"book_id"`
	SerialNumber string    `json:"serialNumber" db:"serial_number"`
	Available    bool      `json:"available" db:"available"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CopyDetail is a copy joined with its parent book.
type CopyDetail struct {
	BookCopy
	Book Book `json:"book"`
}

// BookDetail is a book together with all of its copies.
type BookDetail struct {
	Book
	BookCopies []BookCopy `json:"bookCopies"`
}

type Reservation struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"userId" db:"user_id"`
	BookCopyID int       `json:"bookCopyId" db:"book_copy_id"`
	ReturnDate Date      `json:"returnDate" db:"return_date"`
	ReturnedAt *Date     `json:"returnedAt" db:"returned_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Active reports whether the reservation has not been returned yet.
func (r Reservation) Active() bool {
	return r.ReturnedAt == nil
}

// Overdue reports whether the reservation is active and past due on the given day.
func (r Reservation) Overdue(today Date) bool {
	return r.Active() && r.ReturnDate.Before(today.Time)
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Name         string    `json:"name" db:"name"`
	Birthdate    Date      `json:"birthdate" db:"birthdate"`
	Address      Address   `json:"address" db:"address"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

func (u User) IsLibrarian() bool {
	return u.Role == RoleLibrarian
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging
	Items []BookItem `json:"items"`
}

type ListCopies struct {
	Paging
	Items []BookCopy `json:"items"`
}

type ListReservations struct {
	Paging
	Items []Reservation `json:"items"`
}
