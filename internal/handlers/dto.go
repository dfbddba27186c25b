package handlers

import (
	"github.com/gorilla/schema"

	"github.com/mzegla/maze-carver/internal/session"
)

type CreateMazeDTO struct {
	Rows int     `schema:"rows,required"`
	Cols int     `schema:"cols,required"`
	Seed *uint64 `schema:"seed"`
}

func ParseCreateMazeDTO(src map[string][]string) (CreateMazeDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto CreateMazeDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type StepDTO struct {
	Count int `schema:"count"`
}

func ParseStepDTO(src map[string][]string) (StepDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dto := StepDTO{Count: 1}
	err := dec.Decode(&dto, src)
	return dto, err
}

type cellDTO struct {
	Row     int   `json:"row"`
	Col     int   `json:"col"`
	Visited bool  `json:"visited"`
	Walls   uint8 `json:"walls"`
}

type mazeSessionDTO struct {
	SessionID    string    `json:"session_id"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	Seed         uint64    `json:"seed"`
	Current      int       `json:"current"`
	Done         bool      `json:"done"`
	Steps        int       `json:"steps"`
	WallsRemoved int       `json:"walls_removed"`
	Cells        []cellDTO `json:"cells"`
	CreatedAt    int64     `json:"created_at"`
}

// newMazeSessionDTO snapshots a session into a frame a rendering client can
// draw. The caller must hold the session lock.
func newMazeSessionDTO(s *session.Session) *mazeSessionDTO {
	grid := s.Grid

	cells := make([]cellDTO, grid.Size())
	for i := range cells {
		cell := grid.CellAt(i)
		cells[i] = cellDTO{
			Row:     cell.Row,
			Col:     cell.Col,
			Visited: cell.Visited,
			Walls:   cell.WallMask(),
		}
	}

	return &mazeSessionDTO{
		SessionID:    s.ID.String(),
		Rows:         grid.Rows(),
		Cols:         grid.Cols(),
		Seed:         s.Seed,
		Current:      grid.Current(),
		Done:         grid.Done(),
		Steps:        grid.Steps(),
		WallsRemoved: grid.WallsRemoved(),
		Cells:        cells,
		CreatedAt:    s.CreatedAt.UnixMilli(),
	}
}
