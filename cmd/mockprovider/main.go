// Command mockprovider serves a fake weatherapi.com "current" endpoint for
// local development of the widget. Responses are generated with gofakeit;
// a fixed -seed makes them reproducible.
//
// Usage:
//
//	go run ./cmd/mockprovider -addr :9000 -seed 42
//	WEATHER_API_BASE_URL=http://localhost:9000/v1 WEATHER_API_KEY=dev go run ./cmd/widget
//
// Any query containing "atlantis" answers like an unknown location.
package main

import (
	"flag"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// conditions mixes the phrases the widget knows with ones it passes through.
var conditions = []string{
	"Sunny", "Partly Cloudy", "Cloudy", "Overcast", "Rain", "Thunderstorm",
	"Snow", "Mist", "Fog", "Clear", "Patchy rain possible", "Light drizzle",
}

type provider struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	seed := flag.Uint64("seed", 0, "random seed (0 picks a random one)")
	latency := flag.Duration("latency", 0, "artificial delay added to every response")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	p := &provider{faker: gofakeit.New(*seed)}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/v1/current.json", func(w http.ResponseWriter, req *http.Request) {
		if *latency > 0 {
			time.Sleep(*latency)
		}
		p.handleCurrent(w, req)
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("mock weather provider listening", "addr", *addr, "seed", *seed)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("mock provider stopped", "error", err)
		os.Exit(1)
	}
}

func (p *provider) handleCurrent(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	switch {
	case key == "":
		writeError(w, http.StatusUnauthorized, 1002, "API key is invalid or not provided.")
		return
	case q == "":
		writeError(w, http.StatusBadRequest, 1003, "Parameter q is missing.")
		return
	case strings.Contains(strings.ToLower(q), "atlantis"):
		writeError(w, http.StatusBadRequest, 1006, "No matching location found.")
		return
	}

	p.mu.Lock()
	tempC := math.Round(p.faker.Float64Range(-15, 40)*10) / 10
	condition := p.faker.RandomString(conditions)
	country := p.faker.Country()
	p.mu.Unlock()

	sharedobs.WriteJSON(w, http.StatusOK, map[string]any{
		"location": map[string]any{
			"name":    locationName(q),
			"country": country,
		},
		"current": map[string]any{
			"temp_c": tempC,
			"temp_f": math.Round((tempC*9/5+32)*10) / 10,
			"condition": map[string]any{
				"text": condition,
			},
		},
	})
}

// locationName echoes the query the way weatherapi.com names places.
func locationName(q string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(q), " "))
}

func writeError(w http.ResponseWriter, status, code int, msg string) {
	sharedobs.WriteJSON(w, status, map[string]any{
		"error": map[string]any{"code": code, "message": msg},
	})
}
