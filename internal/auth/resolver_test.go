package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

type resolverFixture struct {
	store    *storage.MemoryStore
	hasher   *PasswordHasher
	resolver *Resolver
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	hasher := NewPasswordHasher()
	return &resolverFixture{
		store:    store,
		hasher:   hasher,
		resolver: NewResolver(store, hasher),
	}
}

func (f *resolverFixture) addCustomer(t *testing.T, email, username, password string) {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	_, err = f.store.CreateCustomer(&models.Customer{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	require.NoError(t, err)
}

func (f *resolverFixture) addAgency(t *testing.T, email, name, password string) {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	_, err = f.store.CreateAgency(&models.Agency{
		AgencyName:   name,
		AgencyEmail:  email,
		PasswordHash: hash,
	})
	require.NoError(t, err)
}

func (f *resolverFixture) addDriver(t *testing.T, email, fullName, password string) {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	_, err = f.store.CreateDriver(&models.Driver{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	})
	require.NoError(t, err)
}

func TestResolver_CustomerLogin(t *testing.T) {
	f := newResolverFixture(t)
	f.addCustomer(t, "c@x.com", "chris", "secret")

	principal, redirectTo, err := f.resolver.Resolve("c@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, principal.Role)
	assert.Equal(t, "chris", principal.Name)
	assert.Equal(t, "c@x.com", principal.Email)
	assert.Equal(t, "/dashboard.html", redirectTo)
}

func TestResolver_AgencyOnlyAccount(t *testing.T) {
	f := newResolverFixture(t)
	f.addAgency(t, "a@x.com", "Yatra Travels", "pw1")

	principal, redirectTo, err := f.resolver.Resolve("a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgency, principal.Role)
	assert.Equal(t, "Yatra Travels", principal.Name)
	assert.Equal(t, "/agencyDashboard.html", redirectTo)

	_, _, err = f.resolver.Resolve("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestResolver_DriverLogin(t *testing.T) {
	f := newResolverFixture(t)
	f.addDriver(t, "d@x.com", "Dev Kumar", "drive")

	principal, redirectTo, err := f.resolver.Resolve("d@x.com", "drive")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, principal.Role)
	assert.Equal(t, "Dev Kumar", principal.Name)
	assert.Equal(t, "/driverDashboard.html", redirectTo)
}

// An email present in several collections resolves in provider order:
// customer, then agency, then driver.
func TestResolver_CollisionPrecedence(t *testing.T) {
	f := newResolverFixture(t)
	f.addCustomer(t, "shared@x.com", "cust", "cpw")
	f.addAgency(t, "shared@x.com", "Shared Agency", "apw")
	f.addDriver(t, "shared@x.com", "Shared Driver", "dpw")

	principal, _, err := f.resolver.Resolve("shared@x.com", "cpw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, principal.Role)

	// The customer entry shadows the agency even with the agency's
	// password: precedence decides which record answers.
	_, _, err = f.resolver.Resolve("shared@x.com", "apw")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestResolver_AgencyShadowsDriver(t *testing.T) {
	f := newResolverFixture(t)
	f.addAgency(t, "both@x.com", "Agency First", "apw")
	f.addDriver(t, "both@x.com", "Driver Second", "dpw")

	principal, _, err := f.resolver.Resolve("both@x.com", "apw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgency, principal.Role)
}

func TestResolver_AccountNotFound(t *testing.T) {
	f := newResolverFixture(t)
	f.addCustomer(t, "c@x.com", "chris", "secret")

	_, _, err := f.resolver.Resolve("nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
