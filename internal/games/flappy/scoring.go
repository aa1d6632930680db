package flappy

// MarkPassed flags every obstacle whose trailing edge is now strictly left
// of playerX and returns how many were newly flagged. Each obstacle is
// counted at most once.
func (c *Course) MarkPassed(playerX float64) int {
	passed := 0
	for i := range c.obstacles {
		o := &c.obstacles[i]
		if !o.Scored && o.X+c.width < playerX {
			o.Scored = true
			passed++
		}
	}
	return passed
}

// recordBest is called once when a session ends. A score above the best
// becomes the displayed best even when it cannot be persisted.
func (g *Game) recordBest() {
	if g.score <= g.best {
		return
	}
	g.best = g.score

	if g.env.Scores == nil {
		return
	}
	id := g.cfg.Game.ID
	saved, err := g.env.Scores.SaveBestScore(id, g.score)
	if err != nil {
		g.log.Warn("could not save best score", "game", id, "score", g.score, "error", err)
		return
	}
	if saved {
		g.log.Info("new best score", "game", id, "score", g.score)
	}
}

// loadBest reads the persisted best score, falling back to 0.
func (g *Game) loadBest() int {
	if g.env.Scores == nil {
		return 0
	}
	best, err := g.env.Scores.BestScore(g.cfg.Game.ID)
	if err != nil {
		g.log.Warn("could not read best score", "game", g.cfg.Game.ID, "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}
