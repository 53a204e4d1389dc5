package server

import (
	"encoding/json"
	"ethereplodor-server/internal/engine"
	"net/http"
)

// DebugHandler exposes raw simulation state, AI fields included.
type DebugHandler struct {
	Sim *engine.Simulation
}

func NewDebugHandler(sim *engine.Simulation) *DebugHandler {
	return &DebugHandler{Sim: sim}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/enemies", h.handleEnemies)
	mux.HandleFunc("/debug/wild", h.handleWild)
	mux.HandleFunc("/debug/loot", h.handleLoot)
	mux.HandleFunc("/debug/quests", h.handleQuests)
	mux.HandleFunc("/debug/corpses", h.handleCorpses)
}

// /debug/enemies - full enemy structs with state, patrol target and cooldowns
func (h *DebugHandler) handleEnemies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sim.DebugEnemies())
}

func (h *DebugHandler) handleWild(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sim.DebugWild())
}

func (h *DebugHandler) handleLoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sim.DebugLoot())
}

func (h *DebugHandler) handleQuests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sim.DebugQuests())
}

// /debug/corpses - pending removals. Heap order, not removal order.
func (h *DebugHandler) handleCorpses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sim.DebugCorpses())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}
