package bootstrap

import (
	"context"
	"log/slog"

	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartPendingSweeper),
)

// StartPendingSweeper schedules removal of pending bookings older than
// the configured TTL. TTL zero keeps holds forever and schedules nothing.
func StartPendingSweeper(lc fx.Lifecycle, cfg config.Config, bookingCommands commands.BookingCommands) error {
	ttl := cfg.Booking.PendingTTL
	if ttl <= 0 {
		slog.Info("pending booking sweeper disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Booking.SweepSchedule, func() {
		removed, sweepErr := bookingCommands.SweepStalePending(context.Background(), ttl)
		if sweepErr != nil {
			slog.Error("pending booking sweep failed", "error", sweepErr.Error())
			return
		}
		if removed > 0 {
			slog.Info("pending booking sweep completed", "removed", removed, "ttl", ttl.String())
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("pending booking sweeper started", "schedule", cfg.Booking.SweepSchedule, "ttl", ttl.String())
			return nil
		},
		OnStop: func(_ context.Context) error {
			<-c.Stop().Done()
			return nil
		},
	})
	return nil
}
