package model

type SignUpRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Name        string  `json:"name" validate:"required"`
	Birthdate   Date    `json:"birthdate" validate:"required"`
	Address     Address `json:"address"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Role        Role    `json:"role" validate:"omitempty,oneof=librarian member"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type CreateBookRequest struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
	Edition   string `json:"edition" validate:"required"`
	Year      int    `json:"year" validate:"required"`
	ISBN      string `json:"isbn"`
	Genre     string `json:"genre"`
}

type UpdateBookRequest struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Publisher *string `json:"publisher"`
	Edition   *string `json:"edition"`
	Year      *int    `json:"year"`
	ISBN      *string `json:"isbn"`
	Genre     *string `json:"genre"`
}

// BookFilter holds the catalog substring filters.
type BookFilter struct {
	Title  string
	Author string
	Genre  string
}

type CreateCopyRequest struct {
	SerialNumber string `json:"serialNumber" validate:"required"`
}

type UpdateCopyRequest struct {
	SerialNumber *string `json:"serialNumber"`
	Available    *bool   `json:"available"`
}

type CreateReservationRequest struct {
	// UserID defaults to the authenticated caller when omitted.
	UserID     *int `json:"userId"`
	BookCopyID *int `json:"bookCopyId"`
	// BookID picks an arbitrary available copy of the book
	// when BookCopyID is omitted.
	BookID     *int `json:"bookId"`
	ReturnDate Date `json:"returnDate" validate:"required"`
}

// ReservationFilter narrows the librarian reservation listing.
type ReservationFilter struct {
	UserID *int
	// Overdue true selects overdue ones only, false selects active ones only.
	Overdue *bool
}
