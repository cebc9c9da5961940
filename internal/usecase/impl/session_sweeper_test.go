package impl

import (
	"testing"

	mockRepo "stationhub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func newTestSweeper(refreshTokenRepo *mockRepo.MockRefreshTokenRepository) *SessionSweeper {
	return &SessionSweeper{
		refreshTokenRepo: refreshTokenRepo,
		logger:           newTestLogger(),
		done:             make(chan struct{}),
	}
}

func TestSessionSweeper_Sweep(t *testing.T) {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	sweeper := newTestSweeper(refreshTokenRepo)

	refreshTokenRepo.EXPECT().
		DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	sweeper.sweep()
}

func TestSessionSweeper_SweepToleratesRepoFailure(t *testing.T) {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	sweeper := newTestSweeper(refreshTokenRepo)

	refreshTokenRepo.EXPECT().
		DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("connection reset"))

	sweeper.sweep()
}
