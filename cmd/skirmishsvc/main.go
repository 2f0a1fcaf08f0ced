package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func main() {
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("log_level", "info")
	viper.SetEnvPrefix("skirmish")
	viper.AutomaticEnv()

	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/healthz", handleHealthz)
	mux.HandleFunc("/api/simulate", handleSimulate(logger))
	mux.HandleFunc("/api/simulate/ws", handleSimulateWS(logger))

	addr := viper.GetString("listen_addr")
	logger.Info().Str("addr", addr).Msg("skirmish service listening")
	if err := http.ListenAndServe(addr, withCORS(mux)); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
