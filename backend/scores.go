package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// ScoreBook keeps a flat text file of "<name> <black-count>" lines. The best
// score ever recorded stays on the first line; everything else is in play
// order.
type ScoreBook struct {
	path string
}

type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func NewScoreBook(path string) ScoreBook {
	return ScoreBook{path: path}
}

// Save records a finished game's black-tile count. An empty name skips the
// save. A score beating the current first line is inserted at the top with
// the rest of the file preserved below it.
func (s ScoreBook) Save(name string, black int) error {
	if name == "" {
		return nil
	}
	line := fmt.Sprintf("%s %d\n", name, black)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Printf("[scores] creating %s", s.path)
		return os.WriteFile(s.path, []byte(line), 0o644)
	}
	if err != nil {
		return err
	}

	top, ok := parseScoreLine(firstLine(string(data)))
	if ok && black > top.Score {
		log.Printf("[scores] new high score %d for %s", black, name)
		return os.WriteFile(s.path, append([]byte(line), data...), 0o644)
	}
	return os.WriteFile(s.path, append(data, []byte(line)...), 0o644)
}

// Top returns the current high score entry, if the file has one.
func (s ScoreBook) Top() (ScoreEntry, bool, error) {
	entries, err := s.All()
	if err != nil {
		return ScoreEntry{}, false, err
	}
	if len(entries) == 0 {
		return ScoreEntry{}, false, nil
	}
	return entries[0], true, nil
}

func (s ScoreBook) All() ([]ScoreEntry, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []ScoreEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if entry, ok := parseScoreLine(scanner.Text()); ok {
			entries = append(entries, entry)
		}
	}
	return entries, scanner.Err()
}

// parseScoreLine reads "<name> <score>"; the name may contain spaces, the
// score is the last field.
func parseScoreLine(line string) (ScoreEntry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ScoreEntry{}, false
	}
	score, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return ScoreEntry{}, false
	}
	return ScoreEntry{
		Name:  strings.Join(fields[:len(fields)-1], " "),
		Score: score,
	}, true
}

func firstLine(data string) string {
	if idx := strings.IndexByte(data, '\n'); idx >= 0 {
		return data[:idx]
	}
	return data
}
