package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrLateBorrowings indicates that the borrower has overdue open borrowings.
	ErrLateBorrowings = errors.New("borrower has late borrowings")
	// ErrBorrowingNotFound indicates that no open borrowing matches the request.
	ErrBorrowingNotFound = errors.New("borrowing not found")
)

// LoanPeriodDays is the fixed loan period added to the start date.
const LoanPeriodDays = 14

// Borrowing holds one open loan. A borrowing exists only while the
// book is out; returning it removes the record entirely. Lateness is
// never stored, it is derived from DueDate at query time.
type Borrowing struct {
	ID        uuid.UUID `json:"id"`
	ISBN      string    `json:"isbn"`
	Username  string    `json:"username"`
	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`
}

// CreateBorrowingParams is the input data to create a borrowing.
type CreateBorrowingParams struct {
	ISBN      string    `json:"isbn"`
	Username  string    `json:"username"`
	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`
}

// BorrowTxResult is the result of a successful borrow operation.
type BorrowTxResult struct {
	Borrowing Borrowing `json:"borrowing"`
	Book      Book      `json:"book"`
}
