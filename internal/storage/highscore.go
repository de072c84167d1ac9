package storage

import (
	"strconv"
	"strings"
)

// KV is the key-value surface the high score is kept in.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// SetIfGreater atomically stores value when it beats the score under key.
	SetIfGreater(key string, value int) (bool, error)
	Delete(key string) error
}

// HighScore reads and writes a single high score stored as a decimal string
// under a fixed key.
type HighScore struct {
	kv  KV
	key string
}

// NewHighScore binds a high score to key in kv.
func NewHighScore(kv KV, key string) *HighScore {
	return &HighScore{kv: kv, key: key}
}

// Key returns the key the score is stored under.
func (h *HighScore) Key() string {
	return h.key
}

// HighScore returns the stored score. A missing or non-numeric value reads
// as 0; only storage failures are returned as errors.
func (h *HighScore) HighScore() (int, error) {
	raw, ok, err := h.kv.Get(h.key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return ParseScore(raw), nil
}

// RaiseHighScore stores score when it is positive and beats the stored
// value. Concurrent callers can never lower the stored score.
func (h *HighScore) RaiseHighScore(score int) error {
	if score <= 0 {
		return nil
	}
	_, err := h.kv.SetIfGreater(h.key, score)
	return err
}

// Reset removes the stored score.
func (h *HighScore) Reset() error {
	return h.kv.Delete(h.key)
}

// ParseScore converts a stored value to a score. Surrounding whitespace is
// ignored; anything but decimal digits yields 0.
func ParseScore(raw string) int {
	raw = strings.TrimSpace(raw)
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
