// Package httpapi exposes the minesweeper engine over JSON HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/gamedata"
)

// Board used when POST /api/game has no body.
const (
	defaultRows  = 10
	defaultCols  = 10
	defaultMines = 10
)

// GameService is the part of the engine the API drives.
type GameService interface {
	Create(ctx context.Context, rows, cols, mines int) (*engine.Game, error)
	Get(ctx context.Context, id string) (*engine.Game, error)
	Reveal(ctx context.Context, id string, row, col int) (*engine.Game, error)
	ToggleFlag(ctx context.Context, id string, row, col int) (*engine.Game, error)
}

// Handler serves the game, result and difficulty endpoints.
type Handler struct {
	games        GameService
	results      engine.ResultRepository
	difficulties *gamedata.DifficultyRegistry
	log          logrus.FieldLogger
	now          func() time.Time
}

// New creates a handler. log may be nil.
func New(games GameService, results engine.ResultRepository, difficulties *gamedata.DifficultyRegistry, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		games:        games,
		results:      results,
		difficulties: difficulties,
		log:          log,
		now:          time.Now,
	}
}

// Register installs the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/game", h.handleCreate)
	mux.HandleFunc("GET /api/game/{id}", h.handleGet)
	mux.HandleFunc("POST /api/game/{id}/reveal", h.handleReveal)
	mux.HandleFunc("POST /api/game/{id}/toggle-flag", h.handleToggleFlag)
	mux.HandleFunc("GET /api/results", h.handleListResults)
	mux.HandleFunc("POST /api/results", h.handleSaveResult)
	mux.HandleFunc("GET /api/difficulties", h.handleDifficulties)
}

// Routes returns the API wrapped in CORS and request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)
	return requestLogger(h.log, cors(mux))
}

// ---- Games ----

type createReq struct {
	Rows       int    `json:"rows,omitempty"`
	Cols       int    `json:"cols,omitempty"`
	Mines      int    `json:"mines,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "invalid_request")
		return
	}

	rows, cols, mines := req.Rows, req.Cols, req.Mines
	switch {
	case strings.TrimSpace(req.Difficulty) != "":
		d, ok := h.difficulties.Get(req.Difficulty)
		if !ok {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("unknown difficulty %q", req.Difficulty), engine.KindInvalidGameParameters.String())
			return
		}
		rows, cols, mines = d.Rows, d.Cols, d.Mines
	case rows == 0 && cols == 0 && mines == 0:
		rows, cols, mines = defaultRows, defaultCols, defaultMines
	}

	g, err := h.games.Create(r.Context(), rows, cols, mines)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newGameView(g))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(g))
}

func (h *Handler) handleReveal(w http.ResponseWriter, r *http.Request) {
	row, col, ok := parseCell(w, r)
	if !ok {
		return
	}
	g, err := h.games.Reveal(r.Context(), r.PathValue("id"), row, col)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(g))
}

func (h *Handler) handleToggleFlag(w http.ResponseWriter, r *http.Request) {
	row, col, ok := parseCell(w, r)
	if !ok {
		return
	}
	g, err := h.games.ToggleFlag(r.Context(), r.PathValue("id"), row, col)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(g))
}

// parseCell reads the row and col query parameters, answering 400 when
// either is missing or not an integer.
func parseCell(w http.ResponseWriter, r *http.Request) (row, col int, ok bool) {
	q := r.URL.Query()
	row, errRow := strconv.Atoi(q.Get("row"))
	col, errCol := strconv.Atoi(q.Get("col"))
	if errRow != nil || errCol != nil {
		writeError(w, http.StatusBadRequest, "row and col must be integers", engine.KindInvalidCoordinate.String())
		return 0, 0, false
	}
	return row, col, true
}

// ---- Results ----

func (h *Handler) handleListResults(w http.ResponseWriter, r *http.Request) {
	list, err := h.results.List(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list results")
		writeError(w, http.StatusInternalServerError, "internal error", engine.KindUnknown.String())
		return
	}
	if list == nil {
		list = []engine.Result{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleSaveResult(w http.ResponseWriter, r *http.Request) {
	var in engine.Result
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "invalid_request")
		return
	}
	in.ID = 0
	if in.RecordedAt.IsZero() {
		in.RecordedAt = h.now().UTC()
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "invalid_request")
		return
	}

	saved, err := h.results.Save(r.Context(), in)
	if err != nil {
		h.log.WithError(err).Error("save result")
		writeError(w, http.StatusInternalServerError, "internal error", engine.KindUnknown.String())
		return
	}
	h.log.WithFields(logrus.Fields{"result_id": saved.ID, "player": saved.Player, "won": saved.Won}).Info("result recorded")
	writeJSON(w, http.StatusCreated, saved)
}

// ---- Difficulties ----

func (h *Handler) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Default      string                `json:"default"`
		Difficulties []gamedata.Difficulty `json:"difficulties"`
	}{
		Default:      h.difficulties.Default().ID,
		Difficulties: h.difficulties.All(),
	})
}

// ---- Responses ----

// statusFor maps an engine error kind onto an HTTP status.
func statusFor(kind engine.Kind) int {
	switch kind {
	case engine.KindGameNotFound:
		return http.StatusNotFound
	case engine.KindGameAlreadyOver:
		return http.StatusConflict
	case engine.KindInvalidOperation, engine.KindInvalidCoordinate, engine.KindInvalidGameParameters:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	kind := engine.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		h.log.WithError(err).Error("engine operation failed")
		writeError(w, status, "internal error", kind.String())
		return
	}
	var e *engine.Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.Message
	}
	writeError(w, status, msg, kind.String())
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, errorView{Error: msg, Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
