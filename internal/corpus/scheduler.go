package corpus

import (
	"context"
	"time"
)

// RunRetries calls Seed on every tick until the store holds a corpus or ctx
// is cancelled. A non-positive interval disables the loop.
func (s *Seeder) RunRetries(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("seed retry scheduler started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("seed retry scheduler stopped")
			return
		case <-ticker.C:
			outcome, err := s.Seed(ctx)
			if err != nil {
				continue
			}
			s.logger.Info("seed retry finished", "outcome", outcome.String())
			return
		}
	}
}
