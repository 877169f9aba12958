package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/leaguedesk/league-dues/internal/config"
	"github.com/leaguedesk/league-dues/internal/dues"
	"github.com/leaguedesk/league-dues/internal/events"
	"github.com/leaguedesk/league-dues/internal/events/kafka"
	"github.com/leaguedesk/league-dues/internal/interfaces"
	"github.com/leaguedesk/league-dues/internal/reconcile"
	"github.com/leaguedesk/league-dues/internal/storage/memory"
	"github.com/leaguedesk/league-dues/internal/storage/postgres"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	var store interfaces.RegistrationStore
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open database")
		}
		if err := postgres.Migrate(db); err != nil {
			logrus.WithError(err).Fatal("failed to run migrations")
		}
		pgStore := postgres.NewPostgresRegistrationStore(db)
		if err := pgStore.Ping(context.Background()); err != nil {
			logrus.WithError(err).Fatal("failed to reach database")
		}
		store = pgStore
	} else {
		logrus.Warn("DATABASE_URL not set, using in-memory store")
		store = memory.NewMemoryRegistrationStore()
	}

	var publisher interfaces.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	service := dues.NewService(store, publisher, reconcile.NewReconciler(cfg.VirtualDueIn()))

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		views := service.UserPaymentsOrEmpty(r.Context(), userID, time.Now())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(views)
	})

	mux.HandleFunc("/payments/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		summary := service.UserSummaryOrZero(r.Context(), userID, time.Now())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})

	server := &http.Server{Addr: cfg.Addr, Handler: mux}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("received shutdown signal, shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("shutdown error")
		}
	}()

	logrus.WithField("addr", cfg.Addr).Info("starting league dues server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server error")
	}
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		http.Error(w, "user_id is a mandatory field", http.StatusBadRequest)
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "user_id must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
