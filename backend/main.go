package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	GameID     string            `json:"game_id"`
	Settings   GameSettingsDTO   `json:"settings"`
	BoardSize  int               `json:"board_size"`
	Board      [][]int           `json:"board"`
	NextPlayer int               `json:"next_player"`
	BlackCount int               `json:"black_count"`
	WhiteCount int               `json:"white_count"`
	Status     string            `json:"status"`
	ValidMoves []validMoveDTO    `json:"valid_moves"`
	Result     *GameResult       `json:"result,omitempty"`
	Message    string            `json:"message,omitempty"`
	History    []historyEntryDTO `json:"history"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	BoardSize   int    `json:"board_size"`
}

type validMoveDTO struct {
	Location int `json:"location"`
	Row      int `json:"row"`
	Col      int `json:"col"`
	Captures int `json:"captures"`
}

type historyEntryDTO struct {
	Location   int   `json:"location"`
	Player     int   `json:"player"`
	Flipped    []int `json:"flipped"`
	IsAi       bool  `json:"is_ai"`
	BlackCount int   `json:"black_count"`
	WhiteCount int   `json:"white_count"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	GameID     string `json:"game_id"`
	BoardSize  int    `json:"board_size"`
	NextPlayer int    `json:"next_player"`
	Status     string `json:"status"`
}

type apiMove struct {
	Location *int `json:"location,omitempty"`
	X        *int `json:"x,omitempty"`
	Y        *int `json:"y,omitempty"`
}

type apiClick struct {
	PX float64 `json:"px"`
	PY float64 `json:"py"`
}

type apiScore struct {
	Name string `json:"name"`
}

func main() {
	config := GetConfig()
	controller, err := NewGameController(DefaultGameSettings())
	if err != nil {
		log.Fatalf("[backend] cannot create game: %v", err)
	}
	scores := NewScoreBook(config.ScoresPath)
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(time.Duration(config.TickMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !controller.Tick() || !hub.HasClients() {
					continue
				}
				if entry, ok := controller.LatestHistoryEntry(); ok {
					hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
				}
				hub.broadcastStatus <- controllerStatus(controller)
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		if err := controller.StartGame(settings); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		if err := controller.Reset(controller.Settings()); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", handleUpdateSettings(controller, hub))

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		location, ok := locationFromMove(payload, controller.Settings().BoardSize)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing location"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(location)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/click", func(w http.ResponseWriter, r *http.Request) {
		var payload apiClick
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		layout := NewBoardLayout(controller.Settings().BoardSize, GetConfig().SquareSize)
		queued := controller.OnCellClicked(payload.PX, payload.PY, layout)
		writeJSON(w, http.StatusOK, map[string]bool{"queued": queued})
	})

	r.Post("/api/score", func(w http.ResponseWriter, r *http.Request) {
		var payload apiScore
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		state := controller.State()
		if state.Status != StatusFinished {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "game not finished"})
			return
		}
		if err := scores.Save(payload.Name, state.BlackCount); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("[scores] saved %q game=%s black=%d", payload.Name, controller.GameID(), state.BlackCount)
		writeJSON(w, http.StatusOK, map[string]bool{"saved": payload.Name != ""})
	})

	r.Get("/api/scores", func(w http.ResponseWriter, r *http.Request) {
		entries, err := scores.All()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []ScoreEntry{}
		}
		writeJSON(w, http.StatusOK, map[string][]ScoreEntry{"scores": entries})
	})

	r.Get("/board.svg", func(w http.ResponseWriter, r *http.Request) {
		state := controller.State()
		layout := NewBoardLayout(state.Board.Size(), GetConfig().SquareSize)
		w.Header().Set("Content-Type", "image/svg+xml")
		renderBoardSVG(w, state, controller.Result(), layout)
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("backend listening on %s", config.ListenAddr)
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
	cancel()
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go client.writePump(conn)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

// handleUpdateSettings applies runtime configuration and game settings
// changes. A config payload replaces the stored value wholesale; a settings
// payload resets the game under the new settings.
func handleUpdateSettings(controller *GameController, hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			if err := payload.Config.Validate(); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			if err := controller.Reset(settings); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			hub.broadcastReset <- resetFromController(controller)
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	response := StatusResponse{
		GameID:     controller.GameID(),
		Settings:   controllerSettingsDTO(controller.Settings()),
		BoardSize:  state.Board.Size(),
		Board:      boardToSlice(state.Board),
		NextPlayer: playerToInt(state.ToMove),
		BlackCount: state.BlackCount,
		WhiteCount: state.WhiteCount,
		Status:     statusToString(state.Status),
		ValidMoves: validMovesToDTO(state),
		Message:    state.LastMessage,
		History:    historyToDTO(controller.History()),
	}
	if state.Status == StatusFinished {
		result := controller.Result()
		response.Result = &result
	}
	return response
}

func locationFromMove(payload apiMove, boardSize int) (int, bool) {
	if payload.Location != nil {
		return *payload.Location, true
	}
	if payload.X != nil && payload.Y != nil {
		x, y := *payload.X, *payload.Y
		if x < 0 || x >= boardSize || y < 0 || y >= boardSize {
			return -1, false
		}
		return y*boardSize + x, true
	}
	return -1, false
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	if dto.BoardSize > 0 {
		settings.BoardSize = dto.BoardSize
	}
	switch dto.Mode {
	case "ai_vs_ai":
		settings.BlackType = PlayerAI
		settings.WhiteType = PlayerAI
	case "human_vs_human":
		settings.BlackType = PlayerHuman
		settings.WhiteType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.BlackType = PlayerAI
			settings.WhiteType = PlayerHuman
		} else {
			settings.BlackType = PlayerHuman
			settings.WhiteType = PlayerAI
		}
	}
	return settings
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	humanPlayer := 0
	switch {
	case settings.BlackType == PlayerAI && settings.WhiteType == PlayerAI:
		mode = "ai_vs_ai"
	case settings.BlackType == PlayerHuman && settings.WhiteType == PlayerHuman:
		mode = "human_vs_human"
		humanPlayer = 1
	case settings.BlackType == PlayerHuman:
		humanPlayer = 1
	default:
		humanPlayer = 2
	}
	return GameSettingsDTO{Mode: mode, HumanPlayer: humanPlayer, BoardSize: settings.BoardSize}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for row := 0; row < size; row++ {
		rows[row] = make([]int, size)
		for col := 0; col < size; col++ {
			rows[row][col] = cellToInt(board.At(row*size + col))
		}
	}
	return rows
}

func validMovesToDTO(state GameState) []validMoveDTO {
	moves := make([]validMoveDTO, 0, len(state.ValidMoves))
	for location := 0; location < state.Board.Squares(); location++ {
		captured, ok := state.ValidMoves[location]
		if !ok {
			continue
		}
		moves = append(moves, validMoveDTO{
			Location: location,
			Row:      state.Board.Row(location),
			Col:      state.Board.Col(location),
			Captures: len(captured),
		})
	}
	return moves
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusFinished:
		return "finished"
	default:
		return "running"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Location:   entry.Location,
		Player:     playerToInt(entry.Player),
		Flipped:    append([]int(nil), entry.Flipped...),
		IsAi:       entry.IsAi,
		BlackCount: entry.BlackCount,
		WhiteCount: entry.WhiteCount,
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		GameID:     controller.GameID(),
		BoardSize:  state.Board.Size(),
		NextPlayer: playerToInt(state.ToMove),
		Status:     statusToString(state.Status),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
