package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/container"
	"github.com/saulo-duarte/exam-portal/internal/router"
	"github.com/saulo-duarte/exam-portal/internal/scheduler"
)

func main() {
	c := container.New()
	log := config.Logger

	cleanup, err := scheduler.StartOTPCleanup(c.Config.OTPCleanupSchedule, c.UserContainer.Repo)
	if err != nil {
		log.WithError(err).Fatal("failed to start otp cleanup")
	}
	defer cleanup.Stop()

	srv := &http.Server{
		Addr:              c.Config.HTTPAddr,
		Handler:           router.New(c.RouterConfig()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
