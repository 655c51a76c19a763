package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/lead-scraper/internal/classify"
	"github.com/sells-group/lead-scraper/internal/config"
	"github.com/sells-group/lead-scraper/internal/model"
	"github.com/sells-group/lead-scraper/internal/qualify"
)

const maxBodyBytes = 10 << 20

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classification API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           newRouter(clf, cfg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", cfg.Server.Port))
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

type classifyRequest struct {
	Text     string `json:"text"`
	Industry string `json:"industry"`
}

type classifyResponse struct {
	Industry        string `json:"industry"`
	Label           string `json:"label"`
	TargetIndustry  string `json:"target_industry,omitempty"`
	MatchesIndustry bool   `json:"matches_industry"`
	BusinessName    bool   `json:"business_name"`
	Signal          string `json:"signal,omitempty"`
	Qualified       bool   `json:"qualified"`
}

type qualifyRequest struct {
	Industry string       `json:"industry"`
	Leads    []model.Lead `json:"leads"`
}

func newRouter(c *classify.Classifier, conf *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Use(rateLimit(rate.NewLimiter(rate.Limit(conf.Server.RateLimit), conf.Server.RateBurst)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/scraper/industries", func(w http.ResponseWriter, r *http.Request) {
			names := c.ListIndustries()
			labels := make(map[string]string, len(names))
			for _, n := range names {
				labels[n] = c.Label(n)
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"industries": names,
				"labels":     labels,
			})
		})

		r.Post("/classify", func(w http.ResponseWriter, r *http.Request) {
			var req classifyRequest
			if !decodeJSON(w, r, &req) {
				return
			}

			target := qualify.NormalizeIndustry(req.Industry)
			detected := c.DetectIndustry(req.Text)
			resp := classifyResponse{
				Industry:       detected,
				Label:          c.Label(detected),
				TargetIndustry: target,
				Qualified:      c.IsQualifiedProspect(req.Text, target),
			}
			if target != "" {
				resp.MatchesIndustry = c.MatchesIndustry(req.Text, target)
			}
			if sig, ok := c.BusinessSignal(classify.CandidateName(req.Text)); ok {
				resp.BusinessName = true
				resp.Signal = sig.Name
			}
			writeJSON(w, http.StatusOK, resp)
		})

		r.Post("/qualify", func(w http.ResponseWriter, r *http.Request) {
			var req qualifyRequest
			if !decodeJSON(w, r, &req) {
				return
			}

			res, err := qualify.Run(r.Context(), c, req.Leads, qualify.Options{
				Industry:    req.Industry,
				Concurrency: conf.Qualify.Concurrency,
			})
			if err != nil {
				zap.L().Error("qualify request failed", zap.Error(err))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "qualify failed"})
				return
			}

			verdicts := res.Verdicts
			if verdicts == nil {
				verdicts = []model.Verdict{}
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"verdicts": verdicts,
				"summary":  res.Summary,
			})
		})
	})

	return r
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func rateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
