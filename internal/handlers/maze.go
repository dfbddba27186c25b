package handlers

import (
	"fmt"
	"hash/maphash"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mzegla/maze-carver/internal/config"
	"github.com/mzegla/maze-carver/internal/maze"
	"github.com/mzegla/maze-carver/internal/session"
)

const (
	// maxDimension caps requested grid sizes; larger mazes make frames too
	// big to stream sensibly.
	maxDimension = 256
	// maxStepCount caps how far a single step request may advance.
	maxStepCount = 100_000
)

type MazeHandler struct {
	log   *logrus.Logger
	store *session.Store
	ws    *config.WebSocket
}

func NewMazeHandler(
	log *logrus.Logger,
	store *session.Store,
	ws *config.WebSocket,
) *MazeHandler {
	return &MazeHandler{
		log:   log,
		store: store,
		ws:    ws,
	}
}

// seedOf returns the requested seed, or derives a fresh one when the client
// left the choice to the server.
func seedOf(dto CreateMazeDTO) uint64 {
	if dto.Seed != nil {
		return *dto.Seed
	}
	return new(maphash.Hash).Sum64()
}

func (h *MazeHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateMazeDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	if dto.Rows > maxDimension || dto.Cols > maxDimension {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(
			fmt.Errorf("rows and cols must be at most %d", maxDimension),
		))
		return
	}

	s, err := h.store.Create(dto.Rows, dto.Cols, seedOf(dto))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	h.log.WithFields(logrus.Fields{
		"session": s.ID,
		"rows":    dto.Rows,
		"cols":    dto.Cols,
		"seed":    s.Seed,
	}).Debug("created carve session")

	s.Lock()
	defer s.Unlock()
	sendJSONOrLog(w, h.log, newMazeSessionDTO(s))
}

// fetchSession resolves the {id} path value into a live session, writing
// the appropriate status on failure.
func (h *MazeHandler) fetchSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return nil, false
	}

	s, err := h.store.Get(id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		sendJSONOrLog(w, h.log, wrapError(err))
		return nil, false
	}
	return s, true
}

func (h *MazeHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	sendJSONOrLog(w, h.log, newMazeSessionDTO(s))
}

func (h *MazeHandler) Step(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	dto, err := ParseStepDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}
	if dto.Count < 1 || dto.Count > maxStepCount {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(
			fmt.Errorf("count must be between 1 and %d", maxStepCount),
		))
		return
	}

	s.Lock()
	defer s.Unlock()

	stepSession(s, dto.Count)
	sendJSONOrLog(w, h.log, newMazeSessionDTO(s))
}

// stepSession advances the carve up to count steps, stopping early at
// completion. The caller must hold the session lock.
func stepSession(s *session.Session, count int) {
	for i := 0; i < count; i++ {
		if s.Grid.Step() == maze.StepDone {
			break
		}
	}
}

func (h *MazeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	s.Reset()
	h.log.WithField("session", s.ID).Debug("reset carve session")
	sendJSONOrLog(w, h.log, newMazeSessionDTO(s))
}

func (h *MazeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	if err := h.store.Delete(id); err != nil {
		w.WriteHeader(http.StatusNotFound)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	h.log.WithField("session", id).Debug("deleted carve session")
	w.WriteHeader(http.StatusNoContent)
}
