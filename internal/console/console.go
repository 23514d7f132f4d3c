// Package console provides the interactive terminal front end of the
// library. It drives the same service layer as the http handlers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/pkg/genrepkg"
)

const divider = "----------------------------------------------------"

// UserService provides the user operations needed by the console.
type UserService interface {
	Create(ctx context.Context, username, password, fullname, email, role string) (domain.UserWithoutPassword, error)
	CheckPassword(ctx context.Context, username, password string) (domain.UserWithoutPassword, error)
	Get(ctx context.Context, username string) (domain.User, error)
}

// BookService provides the catalog operations needed by the console.
type BookService interface {
	Create(ctx context.Context, arg domain.CreateBookParams) (domain.Book, error)
	Search(ctx context.Context, term string) ([]domain.Book, error)
	ListAvailable(ctx context.Context) ([]domain.Book, error)
}

// BorrowingService provides the ledger operations needed by the console.
type BorrowingService interface {
	Borrow(ctx context.Context, isbn, username string, startDate time.Time) (domain.BorrowTxResult, error)
	Return(ctx context.Context, isbn, username string) error
	ListForBorrower(ctx context.Context, username string) ([]domain.Borrowing, error)
}

// Console reads commands line by line and renders menus and results.
type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	users      UserService
	books      BookService
	borrowings BorrowingService
}

// New returns a console bound to the given streams and services.
func New(in io.Reader, out io.Writer, us UserService, bs BookService, brs BorrowingService) *Console {
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		users:      us,
		books:      bs,
		borrowings: brs,
	}
}

// errInputClosed stops the menu loops when the input stream ends.
var errInputClosed = errors.New("input closed")

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	if !c.in.Scan() {
		return "", errInputClosed
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, "\nYou need to type a number value")
		fmt.Fprintln(c.out, divider)
		return 0, err
	}

	return n, nil
}

// Run drives the login prompt and the main menu until the user exits
// or the input stream ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the library!")
	fmt.Fprintln(c.out, "You need to login to continue:")

	user, err := c.login(ctx)
	if err != nil {
		if errors.Is(err, errInputClosed) {
			return nil
		}
		return err
	}

	fmt.Fprintf(c.out, "Welcome %s!\n", user.Username)

	for {
		fmt.Fprintln(c.out, "\nSelect an option:")
		fmt.Fprintln(c.out, "1 - See books")

		if user.Role == domain.RoleEmployee {
			fmt.Fprintln(c.out, "2 - Create user")
		}

		fmt.Fprintln(c.out, "3 - Borrow or return books")
		fmt.Fprintln(c.out, "4 - Exit")

		option, err := c.readInt("")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			continue
		}

		switch option {
		case 1:
			err = c.bookMenu(ctx, user)
		case 2:
			if user.Role == domain.RoleEmployee {
				err = c.createUser(ctx)
			}
		case 3:
			err = c.borrowingMenu(ctx, user)
		case 4:
			return nil
		default:
			fmt.Fprintln(c.out, "\nSelect an option between 1 and 4")
			fmt.Fprintln(c.out, divider)
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
	}
}

func (c *Console) login(ctx context.Context) (domain.UserWithoutPassword, error) {
	for {
		username, err := c.readLine("Username: ")
		if err != nil {
			return domain.UserWithoutPassword{}, err
		}

		password, err := c.readLine("Password: ")
		if err != nil {
			return domain.UserWithoutPassword{}, err
		}

		user, err := c.users.CheckPassword(ctx, username, password)
		if err != nil {
			fmt.Fprintln(c.out, "\nWrong username or password, try again")
			fmt.Fprintln(c.out, divider)
			continue
		}

		return user, nil
	}
}

func (c *Console) createUser(ctx context.Context) error {
	for {
		username, err := c.readLine("Type the username: ")
		if err != nil {
			return err
		}

		password, err := c.readLine("Type the password: ")
		if err != nil {
			return err
		}

		fullname, err := c.readLine("Type the full name: ")
		if err != nil {
			return err
		}

		email, err := c.readLine("Type the email: ")
		if err != nil {
			return err
		}

		_, err = c.users.Create(ctx, username, password, fullname, email, domain.RoleMember)
		if err != nil {
			if errors.Is(err, domain.ErrUsernameAlreadyExists) {
				fmt.Fprintln(c.out, "A user with this username already exists.")
				continue
			}
			return err
		}

		fmt.Fprintln(c.out, "\nThe user was successfully created!")
		fmt.Fprintln(c.out, divider)

		return nil
	}
}

func (c *Console) bookMenu(ctx context.Context, user domain.UserWithoutPassword) error {
	for {
		fmt.Fprintln(c.out, "\n"+divider)
		fmt.Fprintln(c.out, "Choose an option:")

		if user.Role == domain.RoleEmployee {
			fmt.Fprintln(c.out, "1 - Create a book")
		}

		fmt.Fprintln(c.out, "2 - Show all books")
		fmt.Fprintln(c.out, "3 - Show only available books")
		fmt.Fprintln(c.out, "4 - Exit")

		option, err := c.readInt("")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return err
			}
			continue
		}

		fmt.Fprintln(c.out, divider)

		switch option {
		case 1:
			if user.Role == domain.RoleEmployee {
				if err := c.createBook(ctx); err != nil {
					return err
				}
			}
		case 2:
			if err := c.searchBooks(ctx); err != nil {
				return err
			}
		case 3:
			if err := c.showAvailableBooks(ctx); err != nil {
				return err
			}
		}

		return nil
	}
}

func (c *Console) createBook(ctx context.Context) error {
	for {
		isbn, err := c.readLine("Type the ISBN of the book: ")
		if err != nil {
			return err
		}

		title, err := c.readLine("Type the title of the book: ")
		if err != nil {
			return err
		}

		genre, err := c.chooseGenre()
		if err != nil {
			return err
		}

		author, err := c.readLine("Type the author of the book: ")
		if err != nil {
			return err
		}

		quantity, err := c.readInt("Type the book's quantity available: ")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return err
			}
			continue
		}

		arg := domain.CreateBookParams{
			ISBN:     isbn,
			Title:    title,
			Author:   author,
			Genre:    genre,
			Quantity: int32(quantity),
		}

		if _, err := c.books.Create(ctx, arg); err != nil {
			fmt.Fprintln(c.out, "\nYou've typed an invalid value. Please try again.")
			fmt.Fprintln(c.out, divider)
			continue
		}

		fmt.Fprintln(c.out, "\nThe book was successfully created!")
		fmt.Fprintln(c.out, divider)

		return nil
	}
}

func (c *Console) chooseGenre() (string, error) {
	for {
		fmt.Fprintln(c.out, "Choose the genre of the book:")

		for i, g := range genrepkg.SupportedGenres {
			fmt.Fprintf(c.out, "%d - %s\n", i, g)
		}

		index, err := c.readInt("")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return "", err
			}
			continue
		}

		if index < 0 || index >= len(genrepkg.SupportedGenres) {
			fmt.Fprintf(c.out, "\nChoose a value between 0 and %d\n", len(genrepkg.SupportedGenres)-1)
			fmt.Fprintln(c.out, divider)
			continue
		}

		return genrepkg.SupportedGenres[index], nil
	}
}

func (c *Console) searchBooks(ctx context.Context) error {
	term, err := c.readLine("Type the title, genre or author of the book(s) you are searching: ")
	if err != nil {
		return err
	}

	books, err := c.books.Search(ctx, term)
	if err != nil || len(books) == 0 {
		fmt.Fprintln(c.out, "\nNo book compatible with the search term was found")
		fmt.Fprintln(c.out, divider)
		return nil
	}

	for _, b := range books {
		c.printBook(b)
	}

	return nil
}

func (c *Console) showAvailableBooks(ctx context.Context) error {
	books, err := c.books.ListAvailable(ctx)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		fmt.Fprintln(c.out, "No available book was found")
		return nil
	}

	for _, b := range books {
		c.printBook(b)
	}

	return nil
}

func (c *Console) printBook(b domain.Book) {
	fmt.Fprintln(c.out, divider)
	fmt.Fprintf(c.out, "Title: %s\nAuthor: %s\nISBN: %s\nGenre: %s\nQuantity available: %d\n", b.Title, b.Author, b.ISBN, b.Genre, b.QuantityAvailable)
	fmt.Fprintln(c.out, divider)
}

func (c *Console) borrowingMenu(ctx context.Context, user domain.UserWithoutPassword) error {
	for {
		fmt.Fprintln(c.out, "Choose an option:")
		fmt.Fprintln(c.out, "1 - Borrow a book")
		fmt.Fprintln(c.out, "2 - Return a book")
		fmt.Fprintln(c.out, "3 - Exit")

		option, err := c.readInt("")
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return err
			}
			continue
		}

		fmt.Fprintln(c.out, divider)

		switch option {
		case 1:
			if err := c.borrowBook(ctx, user); err != nil {
				return err
			}
		case 2:
			if err := c.returnBook(ctx, user); err != nil {
				return err
			}
		}

		return nil
	}
}

// borrowBook lends a book to the logged in user. Employees may borrow
// on behalf of another borrower.
func (c *Console) borrowBook(ctx context.Context, user domain.UserWithoutPassword) error {
	fmt.Fprintln(c.out, "All the books available to borrow:")

	if err := c.showAvailableBooks(ctx); err != nil {
		return err
	}

	for {
		isbn, err := c.readLine("Type the ISBN of the book that is going to be borrowed: ")
		if err != nil {
			return err
		}

		username := user.Username
		if user.Role == domain.RoleEmployee {
			username, err = c.readLine("Type the username of the user that is going to borrow the book: ")
			if err != nil {
				return err
			}
		}

		// The ledger trusts the username, so the borrower must be
		// resolved here before any record is created.
		if _, err = c.users.Get(ctx, username); err == nil {
			_, err = c.borrowings.Borrow(ctx, isbn, username, time.Now())
		}

		if err == nil {
			fmt.Fprintln(c.out, "The book was successfully borrowed!")
			return nil
		}

		fmt.Fprintln(c.out, err.Error())

		back, rerr := c.readLine("Do you want to go back to the previous screen? ")
		if rerr != nil {
			return rerr
		}

		if strings.EqualFold(back, "yes") {
			return nil
		}
	}
}

// returnBook closes one of the borrower's open borrowings. Employees
// may return on behalf of another borrower.
func (c *Console) returnBook(ctx context.Context, user domain.UserWithoutPassword) error {
	for {
		username := user.Username

		if user.Role == domain.RoleEmployee {
			var err error
			username, err = c.readLine("Type the username of the user that is going to return a book: ")
			if err != nil {
				return err
			}
		}

		if _, err := c.users.Get(ctx, username); err != nil {
			fmt.Fprintln(c.out, err.Error())

			back, rerr := c.readLine("Do you want to go back to the previous screen? ")
			if rerr != nil {
				return rerr
			}

			if strings.EqualFold(back, "yes") {
				return nil
			}

			continue
		}

		borrowings, err := c.borrowings.ListForBorrower(ctx, username)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.out, "Books that the user can return:")
		for _, b := range borrowings {
			c.printBorrowing(b)
		}

		isbn, err := c.readLine("Type the ISBN of the book that is going to be returned: ")
		if err != nil {
			return err
		}

		err = c.borrowings.Return(ctx, isbn, username)
		if err == nil {
			fmt.Fprintln(c.out, "The book was successfully returned!")
			return nil
		}

		fmt.Fprintln(c.out, err.Error())

		back, rerr := c.readLine("Do you want to go back to the previous screen? ")
		if rerr != nil {
			return rerr
		}

		if strings.EqualFold(back, "yes") {
			return nil
		}
	}
}

func (c *Console) printBorrowing(b domain.Borrowing) {
	fmt.Fprintln(c.out, divider)
	fmt.Fprintf(c.out, "Book ISBN: %s\nBorrower: %s\nStart date: %s\nDue date: %s\n",
		b.ISBN, b.Username, b.StartDate.Format("02/01/2006"), b.DueDate.Format("02/01/2006"))
	fmt.Fprintln(c.out, divider)
}
