package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzegla/maze-carver/internal/config"
	"github.com/mzegla/maze-carver/internal/session"
)

func newTestHandler(t *testing.T) (*MazeHandler, *session.Store) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	ws, err := config.NewWebSocket()
	require.NoError(t, err)

	store := session.NewStore()
	return NewMazeHandler(log, store, ws), store
}

func decodeFrame(t *testing.T, body io.Reader) mazeSessionDTO {
	t.Helper()
	var dto mazeSessionDTO
	require.NoError(t, json.NewDecoder(body).Decode(&dto))
	return dto
}

func TestCreate(t *testing.T) {
	h, store := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/maze?rows=3&cols=4&seed=7", nil)
	w := httptest.NewRecorder()
	h.Create(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeFrame(t, w.Body)

	assert.Equal(t, 3, dto.Rows)
	assert.Equal(t, 4, dto.Cols)
	assert.Equal(t, uint64(7), dto.Seed)
	assert.False(t, dto.Done)
	assert.Zero(t, dto.Steps)
	assert.Len(t, dto.Cells, 12)
	for _, cell := range dto.Cells {
		assert.False(t, cell.Visited)
		assert.Equal(t, uint8(0b1111), cell.Walls)
	}

	assert.Equal(t, 1, store.Count())
}

func TestCreateValidation(t *testing.T) {
	h, store := newTestHandler(t)

	for _, query := range []string{
		"rows=0&cols=5",
		"rows=5&cols=0",
		"cols=5",
		"rows=5",
		"rows=5&cols=1000",
	} {
		r := httptest.NewRequest(http.MethodPost, "/maze?"+query, nil)
		w := httptest.NewRecorder()
		h.Create(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}

	assert.Equal(t, 0, store.Count())
}

func TestFetch(t *testing.T) {
	h, store := newTestHandler(t)

	s, err := store.Create(2, 2, 5)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/maze/"+s.ID.String(), nil)
	r.SetPathValue("id", s.ID.String())
	w := httptest.NewRecorder()
	h.Fetch(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeFrame(t, w.Body)
	assert.Equal(t, s.ID.String(), dto.SessionID)

	r = httptest.NewRequest(http.MethodGet, "/maze/"+uuid.NewString(), nil)
	r.SetPathValue("id", uuid.NewString())
	w = httptest.NewRecorder()
	h.Fetch(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/maze/not-a-uuid", nil)
	r.SetPathValue("id", "not-a-uuid")
	w = httptest.NewRecorder()
	h.Fetch(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStep(t *testing.T) {
	h, store := newTestHandler(t)

	s, err := store.Create(4, 4, 11)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/maze/"+s.ID.String()+"/step?count=5", nil)
	r.SetPathValue("id", s.ID.String())
	w := httptest.NewRecorder()
	h.Step(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeFrame(t, w.Body)
	assert.Equal(t, 5, dto.Steps)

	// Stepping far past completion stops at done.
	r = httptest.NewRequest(http.MethodPost, "/maze/"+s.ID.String()+"/step?count=100000", nil)
	r.SetPathValue("id", s.ID.String())
	w = httptest.NewRecorder()
	h.Step(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	dto = decodeFrame(t, w.Body)
	assert.True(t, dto.Done)
	assert.Equal(t, 15, dto.WallsRemoved)
}

func TestStepValidation(t *testing.T) {
	h, store := newTestHandler(t)

	s, err := store.Create(2, 2, 1)
	require.NoError(t, err)

	for _, query := range []string{"count=0", "count=-3", "count=100001"} {
		r := httptest.NewRequest(http.MethodPost, "/maze/"+s.ID.String()+"/step?"+query, nil)
		r.SetPathValue("id", s.ID.String())
		w := httptest.NewRecorder()
		h.Step(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestStepDefaultsToOne(t *testing.T) {
	h, store := newTestHandler(t)

	s, err := store.Create(3, 3, 2)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/maze/"+s.ID.String()+"/step", nil)
	r.SetPathValue("id", s.ID.String())
	w := httptest.NewRecorder()
	h.Step(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeFrame(t, w.Body)
	assert.Equal(t, 1, dto.Steps)
}

func TestResetReplaysSameSeed(t *testing.T) {
	h, store := newTestHandler(t)

	s, err := store.Create(5, 5, 77)
	require.NoError(t, err)

	s.Lock()
	s.Grid.Run()
	first := make([]uint8, s.Grid.Size())
	for i := range first {
		first[i] = s.Grid.CellAt(i).WallMask()
	}
	s.Unlock()

	r := httptest.NewRequest(http.MethodPost, "/maze/"+s.ID.String()+"/reset", nil)
	r.SetPathValue("id", s.ID.String())
	w := httptest.NewRecorder()
	h.Reset(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	dto := decodeFrame(t, w.Body)
	assert.False(t, dto.Done)
	assert.Zero(t, dto.WallsRemoved)

	s.Lock()
	s.Grid.Run()
	for i := range first {
		assert.Equal(t, first[i], s.Grid.CellAt(i).WallMask(), "cell %d differs after reset", i)
	}
	s.Unlock()
}

func TestDelete(t *testing.T) {
	h, store := newTestHandler(t)

	s, err := store.Create(2, 3, 4)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodDelete, "/maze/"+s.ID.String(), nil)
	r.SetPathValue("id", s.ID.String())
	w := httptest.NewRecorder()
	h.Delete(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, store.Count())

	r = httptest.NewRequest(http.MethodDelete, "/maze/"+s.ID.String(), nil)
	r.SetPathValue("id", s.ID.String())
	w = httptest.NewRecorder()
	h.Delete(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExecuteCommand(t *testing.T) {
	store := session.NewStore()
	s, err := store.Create(4, 4, 3)
	require.NoError(t, err)

	require.NoError(t, executeCommand(s, "g"))
	assert.Zero(t, s.Grid.Steps())

	require.NoError(t, executeCommand(s, "s"))
	assert.Equal(t, 1, s.Grid.Steps())

	require.NoError(t, executeCommand(s, "s 3"))
	assert.Equal(t, 4, s.Grid.Steps())

	require.NoError(t, executeCommand(s, "r"))
	assert.Zero(t, s.Grid.Steps())

	assert.Error(t, executeCommand(s, "x"))
	assert.Error(t, executeCommand(s, "s one"))
	assert.Error(t, executeCommand(s, "s 0"))
	assert.Error(t, executeCommand(s, "s 1 2"))
	assert.Error(t, executeCommand(s, "g 1"))
}
