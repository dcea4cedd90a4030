// Package shell implements the interactive bookstore menu.
//
// The shell reads one line per prompt from its input, calls into the book and
// purchase stores, and prints results to its output. Store failures and bad
// input are reported to the operator and the menu comes back; only the end of
// input or a cancelled context stops the loop.
package shell

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mrlokans/bookstore/internal/database/books"
	"github.com/mrlokans/bookstore/internal/entities"
)

// BookStore is the book catalogue used by the shell.
type BookStore interface {
	InsertBook(book *entities.Book) error
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	BuyBook(book *entities.Book, userName, userAddress, creditCardInfo string) (*entities.Purchase, error)
}

// PurchaseStore is the purchase history used by the shell.
type PurchaseStore interface {
	GetAllPurchases() ([]entities.Purchase, error)
}

type Config struct {
	Books          BookStore
	Purchases      PurchaseStore
	In             io.Reader
	Out            io.Writer
	Logger         *log.Logger
	CurrencySymbol string
}

type Shell struct {
	books     BookStore
	purchases PurchaseStore
	in        io.Reader
	out       io.Writer
	logger    *log.Logger
	currency  string
	styles    palette
	lines     chan string
	done      chan struct{}
}

func New(cfg Config) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Shell{
		books:     cfg.Books,
		purchases: cfg.Purchases,
		in:        cfg.In,
		out:       cfg.Out,
		logger:    logger,
		currency:  cfg.CurrencySymbol,
		styles:    newPalette(cfg.Out),
	}
}

const rule = "==============================="

// Run shows the menu until the operator exits or input ends, in which case it
// returns nil. A cancelled context stops the loop with the context's error.
func (s *Shell) Run(ctx context.Context) error {
	s.startReader()
	defer close(s.done)

	for {
		s.printMenu()

		choice, err := s.readLine(ctx)
		if err != nil {
			return s.stop(err)
		}

		switch choice {
		case "1":
			err = s.addBook(ctx)
		case "2":
			s.listBooks()
		case "3":
			err = s.buyBook(ctx)
		case "4":
			s.listPurchases()
		case "5":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, s.styles.err.Render("Invalid option. Please select a valid option."))
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed, leaving shell")
		return nil
	}
	return err
}

// startReader feeds input lines into a channel so a blocked prompt can be
// abandoned when the context is cancelled.
func (s *Shell) startReader() {
	s.lines = make(chan string)
	s.done = make(chan struct{})
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case s.lines <- scanner.Text():
			case <-s.done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.logger.Error("failed to read input", "error", err)
		}
	}()
}

func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine(ctx)
}

func (s *Shell) promptPrice(ctx context.Context) (entities.Price, error) {
	for {
		text, err := s.prompt(ctx, "Price: ")
		if err != nil {
			return entities.Price{}, err
		}
		price, err := ParsePrice(text)
		if err == nil {
			return price, nil
		}
		s.invalid(err, "enter a price such as 12.50")
	}
}

func (s *Shell) promptID(ctx context.Context, label string) (uint, error) {
	for {
		text, err := s.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		id, err := ParseID(text)
		if err == nil {
			return id, nil
		}
		s.invalid(err, "enter a whole number")
	}
}

func (s *Shell) invalid(err error, hint string) {
	fmt.Fprintln(s.out, s.styles.err.Render(fmt.Sprintf("Invalid input (%v), %s.", err, hint)))
}

func (s *Shell) failure(msg string, err error) {
	s.logger.Error(msg, "error", err)
	fmt.Fprintln(s.out, s.styles.err.Render(fmt.Sprintf("%s: %v", msg, err)))
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, s.styles.rule.Render(rule))
	fmt.Fprintln(s.out, s.styles.title.Render("Welcome to the Book Store"))
	fmt.Fprintln(s.out, s.styles.rule.Render(rule))
	fmt.Fprintln(s.out, "Please select an option:")
	fmt.Fprintln(s.out, "1 - Add a book")
	fmt.Fprintln(s.out, "2 - List all books")
	fmt.Fprintln(s.out, "3 - Buy a book")
	fmt.Fprintln(s.out, "4 - List all purchases")
	fmt.Fprintln(s.out, "5 - Exit")
	fmt.Fprintln(s.out, s.styles.rule.Render(rule))
}

func (s *Shell) printHeading(title string) {
	fmt.Fprintln(s.out, s.styles.rule.Render("--------------------------------"))
	fmt.Fprintln(s.out, s.styles.title.Render(title))
	fmt.Fprintln(s.out, s.styles.rule.Render("--------------------------------"))
}

func (s *Shell) formatPrice(price entities.Price) string {
	return s.currency + price.StringFixed(entities.PriceScale)
}

func (s *Shell) addBook(ctx context.Context) error {
	fmt.Fprintln(s.out, "Please enter the book information:")
	title, err := s.prompt(ctx, "Title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt(ctx, "Author: ")
	if err != nil {
		return err
	}
	price, err := s.promptPrice(ctx)
	if err != nil {
		return err
	}
	publisherName, err := s.prompt(ctx, "Publisher: ")
	if err != nil {
		return err
	}

	book := &entities.Book{
		Title:     title,
		Author:    author,
		Price:     price,
		Publisher: &entities.Publisher{Name: publisherName},
	}
	if err := s.books.InsertBook(book); err != nil {
		s.failure("Could not save the book", err)
		return nil
	}
	fmt.Fprintln(s.out, s.styles.ok.Render("Book added."))
	return nil
}

func (s *Shell) listBooks() {
	all, err := s.books.GetAllBooks()
	if err != nil {
		s.failure("Could not load books", err)
		return
	}

	s.printHeading("List of All Books")
	if len(all) == 0 {
		fmt.Fprintln(s.out, "No books found.")
		return
	}
	slices.SortFunc(all, func(a, b entities.Book) int { return cmp.Compare(a.ID, b.ID) })
	for _, b := range all {
		publisher := ""
		if b.Publisher != nil {
			publisher = b.Publisher.Name
		}
		fmt.Fprintf(s.out, "ID: %d, Title: %s, Author: %s, Price: %s, Publisher: %s\n",
			b.ID, b.Title, b.Author, s.formatPrice(b.Price), publisher)
	}
}

func (s *Shell) buyBook(ctx context.Context) error {
	id, err := s.promptID(ctx, "Please enter the ID of the book you want to buy: ")
	if err != nil {
		return err
	}

	book, err := s.books.GetBookByID(id)
	if errors.Is(err, books.ErrBookNotFound) {
		fmt.Fprintln(s.out, "Book not found.")
		return nil
	}
	if err != nil {
		s.failure("Could not load the book", err)
		return nil
	}

	fmt.Fprintf(s.out, "You are buying the book: %s, Price: %s\n", book.Title, s.formatPrice(book.Price))
	name, err := s.prompt(ctx, "Please enter your name: ")
	if err != nil {
		return err
	}
	address, err := s.prompt(ctx, "Please enter your address: ")
	if err != nil {
		return err
	}
	card, err := s.prompt(ctx, "Please enter your credit card number: ")
	if err != nil {
		return err
	}

	if _, err := s.books.BuyBook(book, name, address, card); err != nil {
		if errors.Is(err, books.ErrBookNotFound) {
			fmt.Fprintln(s.out, "Book not found.")
			return nil
		}
		s.failure("Could not save the purchase", err)
		return nil
	}
	fmt.Fprintln(s.out, "Thank you for your purchase!")
	fmt.Fprintln(s.out, s.styles.ok.Render("Book purchased."))

	s.listPurchases()
	return nil
}

func (s *Shell) listPurchases() {
	all, err := s.purchases.GetAllPurchases()
	if err != nil {
		s.failure("Could not load purchases", err)
		return
	}

	s.printHeading("List of All Purchases")
	if len(all) == 0 {
		fmt.Fprintln(s.out, "No purchases found.")
		return
	}
	slices.SortFunc(all, func(a, b entities.Purchase) int { return cmp.Compare(a.ID, b.ID) })
	for _, p := range all {
		title := ""
		if p.Book != nil {
			title = p.Book.Title
		}
		fmt.Fprintf(s.out, "ID: %d, Book Title: %s, Customer Name: %s, Book Id: %d\n",
			p.ID, title, p.UserName, p.BookID)
	}
}
