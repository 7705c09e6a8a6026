package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modelaudit/gpai-cli/internal/engine"
	"github.com/modelaudit/gpai-cli/internal/input"
	"github.com/modelaudit/gpai-cli/internal/model"
	"github.com/modelaudit/gpai-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for browser collaborators",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		policy, err := engine.ParsePolicy(cfg.Engine.Policy)
		if err != nil {
			return err
		}
		pipeline, err := engine.New(engine.DefaultCatalog(), policy)
		if err != nil {
			return err
		}

		st, err := newStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		api := &apiServer{pipeline: pipeline, store: st}

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/api/questions", api.handleQuestions)
		r.Post("/api/assess", api.handleAssess)
		r.Get("/api/runs", api.handleRuns)
		r.Get("/api/runs/{id}", api.handleRun)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

type apiServer struct {
	pipeline *engine.Pipeline
	store    store.Store
}

func (s *apiServer) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	cat := s.pipeline.Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"exclusion":     cat.Exclusion,
		"provider":      cat.Provider,
		"modification":  cat.Modification,
		"mcda_groups":   cat.Groups,
		"prescreen":     cat.PreScreen,
		"scoring":       cat.Scoring,
		"systemic_risk": cat.SysRisk,
	})
}

func (s *apiServer) handleAssess(w http.ResponseWriter, r *http.Request) {
	var doc input.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if doc.ModelName == "" {
		writeError(w, http.StatusBadRequest, "model_name is required")
		return
	}

	res, err := s.pipeline.Run(doc.ToEngine())
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidAnswer),
			errors.Is(err, engine.ErrMissingAnswer),
			errors.Is(err, engine.ErrMissingRationale):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			zap.L().Error("assess failed", zap.String("model", doc.ModelName), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "assessment failed")
		}
		return
	}

	if res.Pending() != engine.PendingNone {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "pending",
			"pending": string(res.Pending()),
		})
		return
	}

	run, err := s.store.SaveRecord(r.Context(), *res.Record)
	if err != nil {
		zap.L().Error("save record failed", zap.String("model", doc.ModelName), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to persist record")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "complete",
		"id":     run.ID,
		"record": run.Record,
	})
}

func (s *apiServer) handleRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListRuns(r.Context(), store.RunFilter{
		Classification: model.Classification(r.URL.Query().Get("classification")),
	})
	if err != nil {
		zap.L().Error("list runs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *apiServer) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		zap.L().Error("get run failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
