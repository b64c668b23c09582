package tabu

// View is everything the presentation layer renders for a running game.
type View struct {
	Phase       Phase     `json:"phase"`
	Paused      bool      `json:"paused"`
	Countdown   int       `json:"countdown"`
	TimeLeft    int       `json:"time_left"`
	Card        *WordCard `json:"card,omitempty"`
	NoCard      bool      `json:"no_card"`
	Turn        Tally     `json:"turn"`
	PassesUsed  int       `json:"passes_used"`
	PassLimit   int       `json:"pass_limit"`
	Team        Team      `json:"team"`
	Round       int       `json:"round"`
	Scores      Scores    `json:"scores"`
	TargetScore int       `json:"target_score"`
	Describer   *Player   `json:"describer,omitempty"`
	GameOver    bool      `json:"game_over"`
	Winner      Team      `json:"winner,omitempty"`
	Scoreboard  []Player  `json:"scoreboard"`
	Awards      *Awards   `json:"awards,omitempty"`
}

// View snapshots the engine for rendering.
func (e *Engine) View() View {
	s := e.session
	v := View{
		Phase:       e.phase,
		Paused:      e.paused,
		Countdown:   e.countdown,
		TimeLeft:    e.timeLeft,
		NoCard:      e.noCard,
		Turn:        e.tally,
		PassesUsed:  e.passes,
		PassLimit:   s.Settings.PassLimit,
		Team:        s.Team,
		Round:       s.Round,
		Scores:      s.Scores,
		TargetScore: s.Settings.TargetScore,
		GameOver:    s.Over,
		Scoreboard:  s.Scoreboard(),
	}
	if e.card != nil {
		c := *e.card
		v.Card = &c
	}
	if d, ok := s.Describer(); ok {
		v.Describer = &d
	}
	if s.Over {
		v.Winner = Winner(s.Scores)
		a := AwardsFor(s.Players)
		v.Awards = &a
	}
	return v
}

// Winner returns the team with the strictly higher score, or "" on a tie.
func Winner(s Scores) Team {
	switch {
	case s.A > s.B:
		return TeamA
	case s.B > s.A:
		return TeamB
	}
	return ""
}

// Awards are the end-of-game superlatives.
type Awards struct {
	TopScorer      Player `json:"top_scorer"`
	TopDescriber   Player `json:"top_describer"`
	TopTabuCatcher Player `json:"top_tabu_catcher"`
}

// AwardsFor picks the highest score, most words described and most tabu
// catches. The earliest player in roster order wins a tie.
func AwardsFor(players []Player) Awards {
	var a Awards
	for i, p := range players {
		if i == 0 || p.Score > a.TopScorer.Score {
			a.TopScorer = p
		}
		if i == 0 || p.WordsDescribed > a.TopDescriber.WordsDescribed {
			a.TopDescriber = p
		}
		if i == 0 || p.TabuCatches > a.TopTabuCatcher.TabuCatches {
			a.TopTabuCatcher = p
		}
	}
	return a
}
