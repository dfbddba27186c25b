package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/mzegla/maze-carver/internal/session"
)

// Watch commands, one per line:
//
//	g        send the current frame
//	s        advance one step
//	s <n>    advance up to n steps
//	r        rebuild the maze from the session seed
//
// After each message the server replies with the full session frame.
var commandNargs = map[string][]int{
	"g": {0},
	"s": {0, 1},
	"r": {0},
}

func executeCommand(s *session.Session, c string) error {
	parts := strings.Split(strings.TrimSpace(c), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	argsOk := false
	for _, n := range nargs {
		if n == len(parts)-1 {
			argsOk = true
		}
	}
	if !argsOk {
		return fmt.Errorf("invalid number of arguments for %q", parts[0])
	}

	switch parts[0] {
	case "g":
		return nil
	case "s":
		count := 1
		if len(parts) == 2 {
			var err error
			if count, err = strconv.Atoi(parts[1]); err != nil {
				return fmt.Errorf("step count must be an int")
			}
			if count < 1 || count > maxStepCount {
				return fmt.Errorf("step count must be between 1 and %d", maxStepCount)
			}
		}
		stepSession(s, count)
		return nil
	case "r":
		s.Reset()
		return nil
	}
	return fmt.Errorf("invalid command")
}

func (h *MazeHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	h.log.WithField("session", s.ID).Debug("watcher connected")

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		s.Lock()
		for _, line := range strings.Split(string(message), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := executeCommand(s, line); err != nil {
				s.Unlock()
				h.log.Warn("command: ", err)
				return
			}
		}
		frame := newMazeSessionDTO(s)
		s.Unlock()

		if err := c.WriteJSON(frame); err != nil {
			h.log.Error("write: ", err)
			break
		}
	}
}
