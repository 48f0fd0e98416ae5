package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/snapshot"
)

// VerifySnapshot returns a ProcessFunc that loads each snapshot into a
// fresh Game built with opts and evaluates its terminal state.
func VerifySnapshot(opts ...engine.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Path: item.Path, Index: item.Index}

		g := engine.NewGame(opts...)
		if err := snapshot.Load(item.Path, g); err != nil {
			result.Error = err
			return result
		}
		result.Game = g
		result.Outcome = g.CheckForGameOver()
		return result
	}
}
