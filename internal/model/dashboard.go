package model

type LibrarianDashboard struct {
	TotalBooks         int             `json:"totalBooks"`
	TotalBorrowedBooks int             `json:"totalBorrowedBooks"`
	BooksDueToday      int             `json:"booksDueToday"`
	OverdueMembers     []OverdueMember `json:"overdueMembers"`
}

type OverdueMember struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// ReservationStats are the frequently refreshed librarian counters,
// cached together under one date-scoped key.
type ReservationStats struct {
	BorrowedCount int `json:"borrowedCount"`
	DueTodayCount int `json:"dueTodayCount"`
}

type MemberDashboard struct {
	ActiveNotOverdueReservations []MemberReservation `json:"activeNotOverdueReservations"`
	ActiveOverdueReservations    []MemberReservation `json:"activeOverdueReservations"`
	RecentReservationHistory     []MemberReservation `json:"recentReservationHistory"`
}

// MemberReservation is a reservation row joined with the copy serial
// number and the parent book's title and author.
type MemberReservation struct {
	ID           int    `json:"id" db:"id"`
	ReturnDate   Date   `json:"returnDate" db:"return_date"`
	ReturnedAt   *Date  `json:"returnedAt,omitempty" db:"returned_at"`
	SerialNumber string `json:"serialNumber" db:"serial_number"`
	Title        string `json:"title" db:"title"`
	Author       string `json:"author" db:"author"`
}
