package runner

// Events are the presentation callbacks. The simulation invokes them
// synchronously inside the tick; receivers must not touch simulation state.
// Nil callbacks are skipped.
type Events struct {
	// OnScoreUpdate fires on every score change with the new total.
	OnScoreUpdate func(score int)

	// OnGameOver fires exactly once per run, at the terminal collision,
	// with the final score.
	OnGameOver func(finalScore int)
}

func (e Events) scoreUpdated(score int) {
	if e.OnScoreUpdate != nil {
		e.OnScoreUpdate(score)
	}
}

func (e Events) gameOver(finalScore int) {
	if e.OnGameOver != nil {
		e.OnGameOver(finalScore)
	}
}
