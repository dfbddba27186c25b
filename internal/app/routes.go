package app

import "github.com/mzegla/maze-carver/internal/handlers"

func (a *App) loadRoutes() {
	maze := handlers.NewMazeHandler(a.log, a.store, a.ws)

	a.router.HandleFunc("POST /maze", maze.Create)
	a.router.HandleFunc("GET /maze/{id}", maze.Fetch)
	a.router.HandleFunc("POST /maze/{id}/step", maze.Step)
	a.router.HandleFunc("POST /maze/{id}/reset", maze.Reset)
	a.router.HandleFunc("DELETE /maze/{id}", maze.Delete)
	a.router.HandleFunc("GET /maze/{id}/watch", maze.ConnectWS)
}
