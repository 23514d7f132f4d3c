// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-biblio/biblio/internal/domain"
)

// RepoMem facilitates user repository layer logic over an in-memory store.
type RepoMem struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewRepoMem returns an empty user RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		users: make(map[string]domain.User),
	}
}

// Create creates the user and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[arg.Username]; ok {
		return domain.User{}, domain.ErrUsernameAlreadyExists
	}

	u := domain.User{
		Username:       arg.Username,
		HashedPassword: arg.HashedPassword,
		FullName:       arg.FullName,
		Email:          arg.Email,
		Role:           arg.Role,
		CreatedAt:      time.Now().Truncate(time.Second).UTC(),
	}

	r.users[arg.Username] = u

	return u, nil
}

// Get returns the user with the given username.
func (r *RepoMem) Get(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	return u, nil
}
