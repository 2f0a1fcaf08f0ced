package main

import (
	"encoding/json"
	"net/http"

	"fleetsim/internal/combat"
	"fleetsim/internal/config"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleSimulate resolves a scenario posted as JSON and returns the report.
// ?log=false drops the per-action log from the response.
func handleSimulate(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST only")
			return
		}
		var sc config.ScenarioConfig
		if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
			writeError(w, http.StatusBadRequest, "invalid scenario: "+err.Error())
			return
		}
		attackers, defenders, attackerPos, defenderPos, err := sc.Fleets()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		includeLog := r.URL.Query().Get("log") != "false"
		outcome, log := combat.SimulateCombat(attackers, defenders, attackerPos, defenderPos, sc.MaxRounds)
		report := combat.BuildReport(outcome, attackers, defenders, log, includeLog)
		logger.Info().
			Str("scenario", sc.Name).
			Stringer("outcome", outcome).
			Int("actions", report.Actions).
			Msg("engagement resolved")
		writeJSON(w, report)
	}
}

// wsFrame is one websocket message: a log entry while the battle replays,
// then a closing result frame.
type wsFrame struct {
	Type   string                 `json:"type"`
	Entry  *combat.CombatLogEntry `json:"entry,omitempty"`
	Report *combat.Report         `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// handleSimulateWS accepts one scenario over the socket, resolves it, streams
// the log entry by entry and finishes with the report.
func handleSimulateWS(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		var sc config.ScenarioConfig
		if err := conn.ReadJSON(&sc); err != nil {
			_ = conn.WriteJSON(wsFrame{Type: "error", Error: "invalid scenario: " + err.Error()})
			return
		}
		attackers, defenders, attackerPos, defenderPos, err := sc.Fleets()
		if err != nil {
			_ = conn.WriteJSON(wsFrame{Type: "error", Error: err.Error()})
			return
		}
		outcome, log := combat.SimulateCombat(attackers, defenders, attackerPos, defenderPos, sc.MaxRounds)
		for i := range log.Entries {
			if err := conn.WriteJSON(wsFrame{Type: "log_entry", Entry: &log.Entries[i]}); err != nil {
				logger.Warn().Err(err).Msg("websocket write failed")
				return
			}
		}
		report := combat.BuildReport(outcome, attackers, defenders, log, false)
		_ = conn.WriteJSON(wsFrame{Type: "result", Report: &report})
		logger.Info().
			Str("scenario", sc.Name).
			Stringer("outcome", outcome).
			Int("actions", len(log.Entries)).
			Msg("engagement streamed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
