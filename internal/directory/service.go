package directory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Unknown is returned by name lookups when the id resolves to nothing.
const Unknown = "N/A"

// RepositoryPort abstracts people persistence for the service.
type RepositoryPort interface {
	Customers(ctx context.Context) []Customer
	Sellers(ctx context.Context) []Party
	Cashiers(ctx context.Context) []Party
	SaveCustomers(ctx context.Context, customers []Customer) error
}

// Service exposes the people lists and name resolution for the ledger.
type Service struct {
	repo RepositoryPort

	mu sync.Mutex
}

// NewService builds a directory service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

func (s *Service) Customers(ctx context.Context) []Customer { return s.repo.Customers(ctx) }
func (s *Service) Sellers(ctx context.Context) []Party      { return s.repo.Sellers(ctx) }
func (s *Service) Cashiers(ctx context.Context) []Party     { return s.repo.Cashiers(ctx) }

// AddCustomer appends a new customer with a fresh id.
func (s *Service) AddCustomer(ctx context.Context, name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, fmt.Errorf("directory: customer name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := Customer{
		ID:        fmt.Sprintf("cust-%d", time.Now().UnixMilli()),
		Name:      name,
		Email:     email,
		Phone:     phone,
		AvatarURL: defaultAvatar,
	}
	all := append(s.repo.Customers(ctx), customer)
	if err := s.repo.SaveCustomers(ctx, all); err != nil {
		return Customer{}, fmt.Errorf("directory: save customers: %w", err)
	}
	return customer, nil
}

// CustomerName resolves a customer id to a display name.
func (s *Service) CustomerName(ctx context.Context, id string) string {
	for _, c := range s.repo.Customers(ctx) {
		if c.ID == id {
			return c.Name
		}
	}
	return Unknown
}

// SellerName resolves a seller id to a display name.
func (s *Service) SellerName(ctx context.Context, id string) string {
	return partyName(s.repo.Sellers(ctx), id)
}

// CashierName resolves a cashier id to a display name.
func (s *Service) CashierName(ctx context.Context, id string) string {
	return partyName(s.repo.Cashiers(ctx), id)
}

func partyName(parties []Party, id string) string {
	for _, p := range parties {
		if p.ID == id {
			return p.Name
		}
	}
	return Unknown
}

// VerifySeller checks a seller's password against the stored hash.
func (s *Service) VerifySeller(ctx context.Context, id, password string) error {
	return verify(s.repo.Sellers(ctx), id, password)
}

// VerifyCashier checks a cashier's password against the stored hash.
func (s *Service) VerifyCashier(ctx context.Context, id, password string) error {
	return verify(s.repo.Cashiers(ctx), id, password)
}

func verify(parties []Party, id, password string) error {
	for _, p := range parties {
		if p.ID != id {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
			return ErrBadCredentials
		}
		return nil
	}
	return ErrNotFound
}
