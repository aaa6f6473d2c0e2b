// Package auth provides the demo sign-in used by the role-based views.
// There is no credential check: the caller names its role explicitly.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleOwner, RoleAdmin:
		return r, nil
	default:
		return "", &domain.ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", s)}
	}
}

type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Authenticator interface {
	SignIn(ctx context.Context, email string, role Role) (*Principal, error)
}

// DemoAuthenticator accepts any email. Owners sign in as the demo owner so
// the owner dashboard has venues to show.
type DemoAuthenticator struct {
	ownerID string
}

func NewDemoAuthenticator(ownerID string) *DemoAuthenticator {
	return &DemoAuthenticator{ownerID: ownerID}
}

func (a *DemoAuthenticator) SignIn(ctx context.Context, email string, role Role) (*Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "is required"}
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}

	p := &Principal{Email: email, Role: role}
	switch role {
	case RoleOwner:
		p.ID = a.ownerID
		p.Name = "Stadium Owner"
	case RoleAdmin:
		p.ID = "admin-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)).String()
		p.Name = "Admin User"
	default:
		p.ID = "user-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)).String()
		p.Name = "John Doe"
	}
	return p, nil
}

var _ Authenticator = (*DemoAuthenticator)(nil)
