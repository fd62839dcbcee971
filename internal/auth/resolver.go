package auth

import (
	"errors"
	"fmt"

	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// PrincipalProvider looks up one principal collection by its contact
// identifier. Lookup returns (nil, nil) when the email is not in the
// collection.
type PrincipalProvider interface {
	// Lookup returns the principal summary and its stored credential hash.
	Lookup(email string) (*models.Principal, string, error)
	// RedirectTo is the landing page for the provider's role.
	RedirectTo() string
}

// Resolver authenticates an email/password pair against an ordered list
// of principal providers. The first provider holding the email wins, so
// cross-collection collisions resolve by provider order.
type Resolver struct {
	providers []PrincipalProvider
	hasher    *PasswordHasher
}

// NewResolver builds the standard resolver: customer, then agency,
// then driver.
func NewResolver(store storage.Store, hasher *PasswordHasher) *Resolver {
	return &Resolver{
		providers: []PrincipalProvider{
			&CustomerProvider{Store: store},
			&AgencyProvider{Store: store},
			&DriverProvider{Store: store},
		},
		hasher: hasher,
	}
}

// Resolve finds the principal for the email and verifies the password.
// It returns the principal and the role's redirect target.
func (r *Resolver) Resolve(email, password string) (*models.Principal, string, error) {
	for _, provider := range r.providers {
		principal, credential, err := provider.Lookup(email)
		if err != nil {
			return nil, "", fmt.Errorf("principal lookup: %w", err)
		}
		if principal == nil {
			continue
		}

		ok, err := r.hasher.Verify(password, credential)
		if err != nil {
			return nil, "", fmt.Errorf("verify password: %w", err)
		}
		if !ok {
			return nil, "", ErrInvalidPassword
		}
		return principal, provider.RedirectTo(), nil
	}
	return nil, "", ErrAccountNotFound
}

// CustomerProvider resolves logins against the customer collection.
type CustomerProvider struct {
	Store storage.Store
}

func (p *CustomerProvider) Lookup(email string) (*models.Principal, string, error) {
	customer, err := p.Store.GetCustomerByEmail(email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	principal := customer.Principal()
	return &principal, customer.PasswordHash, nil
}

func (p *CustomerProvider) RedirectTo() string { return "/dashboard.html" }

// AgencyProvider resolves logins against the agency collection, which
// keys principals by the agencyEmail field.
type AgencyProvider struct {
	Store storage.Store
}

func (p *AgencyProvider) Lookup(email string) (*models.Principal, string, error) {
	agency, err := p.Store.GetAgencyByEmail(email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	principal := agency.Principal()
	return &principal, agency.PasswordHash, nil
}

func (p *AgencyProvider) RedirectTo() string { return "/agencyDashboard.html" }

// DriverProvider resolves logins against the driver collection.
type DriverProvider struct {
	Store storage.Store
}

func (p *DriverProvider) Lookup(email string) (*models.Principal, string, error) {
	driver, err := p.Store.GetDriverByEmail(email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	principal := driver.Principal()
	return &principal, driver.PasswordHash, nil
}

func (p *DriverProvider) RedirectTo() string { return "/driverDashboard.html" }
