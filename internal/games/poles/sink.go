package poles

// Sink receives a snapshot of the lane once per tick.
// The slice is a copy owned by the callee for the duration of the call only.
type Sink interface {
	Render(poles []Pole, bird Position)
}

// ScoreSink is implemented by sinks that display the score.
// It receives the score rounded down to a whole number.
type ScoreSink interface {
	ScoreChanged(score int)
}

// GameOverSink is implemented by sinks that announce the end of a run.
type GameOverSink interface {
	GameOver(score int)
}
