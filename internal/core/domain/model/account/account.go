// Package account contains worker and admin accounts and the single-use
// tokens that let an account holder reset a forgotten password.
package account

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Role separates workers, who return pieces and get paid, from admins, who
// run the production workflow.
type Role int

const (
	RoleWorker Role = 0
	RoleAdmin  Role = 1
)

func (r Role) IsValid() bool {
	return r == RoleWorker || r == RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleWorker:
		return "worker"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	phonePattern    = regexp.MustCompile(`^[0-9]+$`)
)

type Account struct {
	id            kernel.UUID
	username      string
	email         string
	passwordHash  string
	fullname      string
	phone         string
	role          Role
	createdAt     time.Time
	isConstructed bool
}

// NewAccount validates identity fields. The password must already be hashed.
func NewAccount(
	id kernel.UUID,
	username, email, passwordHash, fullname, phone string,
	role Role,
) (*Account, error) {
	a := &Account{isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		a.setUsername(username),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setFullname(fullname),
		a.setPhone(phone),
		a.setRole(role),
	); err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

func RestoreAccount(
	id kernel.UUID,
	username, email, passwordHash, fullname, phone string,
	role Role,
	createdAt time.Time,
) (*Account, error) {
	a, err := NewAccount(id, username, email, passwordHash, fullname, phone, role)
	if err != nil {
		return nil, err
	}
	a.createdAt = createdAt
	return a, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID { return a.id }

func (a *Account) Username() string { return a.username }

func (a *Account) Email() string { return a.email }

func (a *Account) PasswordHash() string { return a.passwordHash }

func (a *Account) Fullname() string { return a.fullname }

func (a *Account) Phone() string { return a.phone }

func (a *Account) Role() Role { return a.role }

func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) IsAdmin() bool { return a.role == RoleAdmin }

func (a *Account) IsWorker() bool { return a.role == RoleWorker }

// ChangePasswordHash replaces the stored hash.
func (a *Account) ChangePasswordHash(hash string) error {
	return a.setPasswordHash(hash)
}

// NormalizeEmail lower-cases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Account) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if !usernamePattern.MatchString(username) {
		return errs.NewValueIsInvalidErrorWithCause("username", errors.New("must contain only letters and numbers"))
	}
	a.username = username
	return nil
}

func (a *Account) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.New("is not in correct format"))
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if strings.TrimSpace(hash) == "" {
		return errs.NewValueIsRequiredError("password")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setFullname(fullname string) error {
	fullname = strings.TrimSpace(fullname)
	if fullname == "" {
		return errs.NewValueIsRequiredError("fullname")
	}
	a.fullname = fullname
	return nil
}

func (a *Account) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone", errors.New("can only contain numbers"))
	}
	a.phone = phone
	return nil
}

func (a *Account) setRole(role Role) error {
	if !role.IsValid() {
		return errs.NewValueIsOutOfRangeError("role", int(role), int(RoleWorker), int(RoleAdmin))
	}
	a.role = role
	return nil
}
