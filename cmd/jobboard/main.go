// cmd/jobboard/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobboard/internal/common/config"
	"jobboard/internal/common/logger"
	"jobboard/internal/models"
	"jobboard/internal/query"
	"jobboard/internal/seed"
	"jobboard/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting jobboard",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	s := store.New(log)
	s.Seed(seed.Jobs())

	// The original demo signs in the first mock candidate when nobody is
	// authenticated yet.
	if cfg.Demo.AutoLogin {
		if _, ok := s.CurrentUser(); !ok {
			s.SetCurrentUser(seed.DemoCandidate())
		}
	}

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.Handle("/debug/pprof/", http.DefaultServeMux)
			zapLog.Info("metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	showcase(s, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	zapLog.Info("shutting down")
}

// showcase walks the seeded store through a representative session so a
// fresh checkout produces visible output: a filtered search, an
// application, and a posting.
func showcase(s *store.Store, log logger.Logger) {
	s.SetSearchQuery("engineer")
	results := s.SearchJobs(query.SortRecent)
	log.Info("sample search", map[string]interface{}{
		"query":   "engineer",
		"matches": len(results),
	})
	s.SetSearchQuery("")

	user, ok := s.CurrentUser()
	if !ok {
		return
	}

	if len(results) > 0 && user.UserRole() == models.RoleCandidate {
		app, err := s.SubmitApplication(models.ApplicationDraft{
			JobID:       results[0].ID,
			CandidateID: user.UserID(),
			CoverLetter: "I would love to join the team.",
		})
		if err != nil {
			log.WithError(err).Warn("sample application rejected", nil)
			return
		}
		log.Info("sample application submitted", map[string]interface{}{
			"applicationId": app.ID,
			"jobId":         app.JobID,
			"status":        app.Status,
		})
	}
}
