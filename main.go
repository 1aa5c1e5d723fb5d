package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bid-sniper/internal/audit"
	"bid-sniper/internal/browser"
	"bid-sniper/internal/config"
	records "bid-sniper/internal/recordService"
	"bid-sniper/internal/repository"
	"bid-sniper/internal/server"
	sniper "bid-sniper/internal/sniperService"
	handler "bid-sniper/services/sniper/handler"
	"bid-sniper/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	store := repository.NewFileRepo(cfg.DataFile)
	recordsSvc := records.NewRecordsService(store)

	driver := browser.NewRodDriver(browser.Options{
		Headless:        cfg.Headless,
		Bin:             cfg.BrowserBin,
		NavigateTimeout: cfg.NavigateTimeout,
		ElementTimeout:  cfg.ElementTimeout,
	})
	registry := sniper.NewRegistry(driver)
	login := sniper.NewLoginController(sniper.LoginOptions{
		URL:              cfg.LoginURL,
		UsernameSelector: cfg.UsernameSelector,
		PasswordSelector: cfg.PasswordSelector,
		SubmitSelector:   cfg.SubmitSelector,
	})
	executor := sniper.NewExecutor(sniper.ExecutorOptions{
		ListingBaseURL:   cfg.ListingBaseURL,
		PlaceBidSelector: cfg.PlaceBidSelector,
		ConfirmSelector:  cfg.ConfirmSelector,
		BidFieldSuffix:   cfg.BidFieldSuffix,
		SettleDelay:      cfg.SettleDelay,
	})

	hub := server.NewHub()
	hubCtx, stopHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	recorder := audit.NewRecorder(cfg.AuditFile)

	scheduler := sniper.NewScheduler(store, registry, login, executor, sniper.FanoutSink{recorder, hub})

	recordsHandler := handler.NewRecordsHandler(recordsSvc)
	sniperHandler := handler.NewSniperHandler(scheduler)
	router := server.SetupRouter(recordsHandler, sniperHandler, hub)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		utils.Info("starting sniper server", map[string]any{"addr": cfg.ListenAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	utils.Info("shutting down", nil)

	// Pending timers and sessions go first so no bid fires into a dying process.
	scheduler.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}

	stopHub()
	if err := recorder.Close(); err != nil {
		utils.Error("failed to close audit trail", map[string]any{"error": err.Error()})
	}
}
