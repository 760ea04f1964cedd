package main

import "sync"

type Config struct {
	SquareSize int    `json:"square_size"`
	ScoresPath string `json:"scores_path"`
	TickMs     int    `json:"tick_ms"`
	ListenAddr string `json:"listen_addr"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		SquareSize: 50,
		ScoresPath: "./scores.txt",
		TickMs:     50,
		ListenAddr: ":8080",
	}
}

func (c Config) Validate() error {
	if c.SquareSize <= 0 || c.TickMs <= 0 {
		return ErrInvalidConfiguration
	}
	if c.ScoresPath == "" || c.ListenAddr == "" {
		return ErrInvalidConfiguration
	}
	return nil
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
