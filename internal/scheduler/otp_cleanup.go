package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/saulo-duarte/exam-portal/internal/config"
)

const cleanupTimeout = time.Minute

// OTPStore is the part of the user store the cleanup job needs.
type OTPStore interface {
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

// StartOTPCleanup runs CleanupExpiredOTPs on schedule until the returned
// cron is stopped. A run that overlaps the previous one is skipped.
func StartOTPCleanup(schedule string, store OTPStore) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		CleanupExpiredOTPs(ctx, store, time.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("schedule otp cleanup %q: %w", schedule, err)
	}

	config.Logger.WithField("schedule", schedule).Info("[OTP-CLEANUP] started")
	c.Start()
	return c, nil
}

func CleanupExpiredOTPs(ctx context.Context, store OTPStore, now time.Time) int64 {
	log := config.WithContext(ctx)

	n, err := store.ClearExpiredOTPs(ctx, now)
	if err != nil {
		log.WithError(err).Error("[OTP-CLEANUP] failed")
		return 0
	}
	if n > 0 {
		log.WithField("cleared", n).Info("[OTP-CLEANUP] expired codes cleared")
	}
	return n
}
