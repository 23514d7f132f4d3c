package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/pkg/randompkg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	repo := NewRepoMem()

	arg := domain.CreateSessionParams{
		ID:           uuid.New(),
		Username:     randompkg.Username(),
		RefreshToken: randompkg.String(32),
		UserAgent:    "test-agent",
		ClientIP:     "127.0.0.1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	created, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, arg.ID, created.ID)
	require.Equal(t, arg.Username, created.Username)
	require.NotZero(t, created.CreatedAt)

	got, err := repo.Get(context.Background(), arg.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
