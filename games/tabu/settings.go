package tabu

import (
	"fmt"
	"time"
)

// Settings bounds, matching the setup screen steppers.
const (
	MinTargetScore  = 10
	MaxTargetScore  = 100
	MinTurnDuration = 30
	MaxTurnDuration = 120
	MaxPassLimit    = 10
)

// Settings configures a game. It is copied into the Session at start and
// never changes while the session runs.
type Settings struct {
	TargetScore  int        `json:"target_score"`
	TurnDuration int        `json:"turn_duration"`
	AgeGroup     AgeGroup   `json:"age_group"`
	Difficulty   Difficulty `json:"difficulty"`
	PassLimit    int        `json:"pass_limit"`
}

func DefaultSettings() Settings {
	return Settings{
		TargetScore:  30,
		TurnDuration: 60,
		AgeGroup:     AgeAdult,
		Difficulty:   Medium,
		PassLimit:    3,
	}
}

// Turn returns the turn duration as a time.Duration.
func (s Settings) Turn() time.Duration {
	return time.Duration(s.TurnDuration) * time.Second
}

func (s Settings) Validate() error {
	switch {
	case s.TargetScore < MinTargetScore || s.TargetScore > MaxTargetScore:
		return fmt.Errorf("%w: target score %d outside %d-%d", ErrInvalidSettings, s.TargetScore, MinTargetScore, MaxTargetScore)
	case s.TurnDuration < MinTurnDuration || s.TurnDuration > MaxTurnDuration:
		return fmt.Errorf("%w: turn duration %d outside %d-%d", ErrInvalidSettings, s.TurnDuration, MinTurnDuration, MaxTurnDuration)
	case s.PassLimit < 0 || s.PassLimit > MaxPassLimit:
		return fmt.Errorf("%w: pass limit %d outside 0-%d", ErrInvalidSettings, s.PassLimit, MaxPassLimit)
	}
	if _, err := ParseAgeGroup(string(s.AgeGroup)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
