package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// selfplay drives AI-vs-AI games against a running backend and tallies the
// results over the API, the same way a browser client would.

type runner struct {
	client       *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *log.Logger
}

type statusResponse struct {
	GameID     string `json:"game_id"`
	Status     string `json:"status"`
	BlackCount int    `json:"black_count"`
	WhiteCount int    `json:"white_count"`
	Result     *struct {
		Winner  int    `json:"winner"`
		Message string `json:"message"`
		Score   string `json:"score"`
	} `json:"result"`
}

type startRequest struct {
	Settings struct {
		Mode      string `json:"mode"`
		BoardSize int    `json:"board_size"`
	} `json:"settings"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "backend base URL")
	games := flag.Int("games", 10, "number of games to play")
	boardSize := flag.Int("size", 8, "board side length")
	poll := flag.Duration("poll", 200*time.Millisecond, "status poll interval")
	flag.Parse()

	r := &runner{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      *addr,
		pollInterval: *poll,
		logger:       log.New(os.Stdout, "[selfplay] ", log.LstdFlags),
	}

	blackWins, whiteWins, ties := 0, 0, 0
	for i := 0; i < *games; i++ {
		status, err := r.playGame(*boardSize)
		if err != nil {
			r.logger.Fatalf("game %d failed: %v", i+1, err)
		}
		switch {
		case status.BlackCount > status.WhiteCount:
			blackWins++
		case status.WhiteCount > status.BlackCount:
			whiteWins++
		default:
			ties++
		}
		r.logger.Printf("game %d (%s): black=%d white=%d", i+1, status.GameID, status.BlackCount, status.WhiteCount)
	}
	r.logger.Printf("done: black=%d white=%d ties=%d", blackWins, whiteWins, ties)
}

func (r *runner) playGame(boardSize int) (statusResponse, error) {
	var req startRequest
	req.Settings.Mode = "ai_vs_ai"
	req.Settings.BoardSize = boardSize
	body, err := json.Marshal(req)
	if err != nil {
		return statusResponse{}, err
	}
	resp, err := r.client.Post(r.baseURL+"/api/start", "application/json", bytes.NewReader(body))
	if err != nil {
		return statusResponse{}, err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusResponse{}, fmt.Errorf("start: unexpected status %d", resp.StatusCode)
	}

	for {
		time.Sleep(r.pollInterval)
		status, err := r.fetchStatus()
		if err != nil {
			return statusResponse{}, err
		}
		if status.Status == "finished" {
			return status, nil
		}
	}
}

func (r *runner) fetchStatus() (statusResponse, error) {
	resp, err := r.client.Get(r.baseURL + "/api/status")
	if err != nil {
		return statusResponse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusResponse{}, fmt.Errorf("status: unexpected status %d", resp.StatusCode)
	}
	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return statusResponse{}, err
	}
	return status, nil
}
