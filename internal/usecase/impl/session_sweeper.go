package impl

import (
	"context"
	"log/slog"
	"time"

	"stationhub/internal/domain/repository"

	"go.uber.org/fx"
)

// sweepInterval is how often expired refresh tokens are purged. Tokens
// are also removed lazily when presented, so the sweep only reclaims
// rows from sessions that were simply abandoned.
const sweepInterval = time.Hour

// SessionSweeperParams holds dependencies for the sweeper, injected by Fx.
type SessionSweeperParams struct {
	fx.In
	fx.Lifecycle

	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// SessionSweeper periodically deletes expired refresh tokens.
type SessionSweeper struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
	done             chan struct{}
}

// NewSessionSweeper starts the background sweep on application start and
// stops it on shutdown.
func NewSessionSweeper(params SessionSweeperParams) *SessionSweeper {
	sweeper := &SessionSweeper{
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
		done:             make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweeper.run()

			return nil
		},
		OnStop: func(context.Context) error {
			close(sweeper.done)

			return nil
		},
	})

	return sweeper
}

func (s *SessionSweeper) run() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to sweep expired sessions", slog.Any("error", err))

		return
	}
	if deleted > 0 {
		s.logger.Info("Swept expired sessions", slog.Int64("deleted", deleted))
	}
}
