package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/NagaPranavN/evolol/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/brain", h.handleBrain)
	mux.HandleFunc("/debug/report", h.handleReport)
	mux.HandleFunc("/debug/history", h.handleHistory)
	mux.HandleFunc("/debug/run", h.handleRun)
}

// /debug/brain - текущая таблица правил в формате файла
func (h *DebugHandler) handleBrain(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Brain())
}

// /debug/report - решения и события последнего тика
func (h *DebugHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.LastReport())
}

// /debug/history - список сохраненных тиков;
// ?tick=N - снимок тика N, ?tick=latest - последний сохраненный снимок
func (h *DebugHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := h.Service.History
	if history == nil {
		http.Error(w, "History store is disabled", http.StatusNotFound)
		return
	}
	ctx := r.Context()

	tickStr := r.URL.Query().Get("tick")
	if tickStr == "" {
		ticks, err := history.Ticks(ctx, h.Service.RunID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, ticks)
		return
	}

	var (
		payload []byte
		ok      bool
		err     error
	)
	if tickStr == "latest" {
		_, payload, ok, err = history.LatestSnapshot(ctx, h.Service.RunID)
	} else {
		tick, convErr := strconv.Atoi(tickStr)
		if convErr != nil {
			http.Error(w, "tick must be an integer or \"latest\"", http.StatusBadRequest)
			return
		}
		payload, ok, err = history.GetSnapshot(ctx, h.Service.RunID, tick)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Snapshot not found", http.StatusNotFound)
		return
	}
	writeJSON(w, json.RawMessage(payload))
}

// /debug/run - метаданные текущего прогона из хранилища истории
func (h *DebugHandler) handleRun(w http.ResponseWriter, r *http.Request) {
	history := h.Service.History
	if history == nil {
		http.Error(w, "History store is disabled", http.StatusNotFound)
		return
	}
	run, ok, err := history.GetRun(r.Context(), h.Service.RunID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, run)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
