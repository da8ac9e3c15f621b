// Package scoring assigns each closed trade a 0-100 discipline score and a
// letter grade. The scorer is stateless: it looks at one trade at a time, with
// no cross-trade context, and all point weights and thresholds live in Config
// so policy can change without touching reconstruction.
package scoring

import "github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"

// Scorer rates one closed trade. Implementations must be pure.
type Scorer interface {
	Score(t model.ClosedTrade) int
}

// Config holds the point weights and thresholds for the baseline heuristic.
type Config struct {
	Baseline int `yaml:"baseline"`

	// P&L outcome.
	WinPoints       int     `yaml:"win_points"`
	SmallLossPoints int     `yaml:"small_loss_points"`
	SmallLossFloor  float64 `yaml:"small_loss_floor"` // net P&L no worse than this still earns points

	// Holding period, applied only when the holding period is known (>0).
	PanicExitMinutes   int `yaml:"panic_exit_minutes"`
	PanicExitPenalty   int `yaml:"panic_exit_penalty"`
	GoodHoldMinMinutes int `yaml:"good_hold_min_minutes"`
	GoodHoldMaxMinutes int `yaml:"good_hold_max_minutes"`
	GoodHoldPoints     int `yaml:"good_hold_points"`
	OtherHoldPoints    int `yaml:"other_hold_points"`

	// Position size sanity, on notional = quantity * entry price.
	NotionalMin      float64 `yaml:"notional_min"`
	NotionalMax      float64 `yaml:"notional_max"`
	SizedWellPoints  int     `yaml:"sized_well_points"`
	OversizedPoints  int     `yaml:"oversized_points"`
	UndersizedPoints int     `yaml:"undersized_points"`
}

// DefaultConfig is the scoring policy in effect today. The exact weights are a
// compatibility contract: changing them changes every historical score.
func DefaultConfig() Config {
	return Config{
		Baseline: 50,

		WinPoints:       30,
		SmallLossPoints: 15,
		SmallLossFloor:  -500,

		PanicExitMinutes:   5,
		PanicExitPenalty:   10,
		GoodHoldMinMinutes: 15,
		GoodHoldMaxMinutes: 240, // 4 hours
		GoodHoldPoints:     20,
		OtherHoldPoints:    10,

		NotionalMin:      10_000,
		NotionalMax:      500_000,
		SizedWellPoints:  20,
		OversizedPoints:  5,
		UndersizedPoints: 10,
	}
}

// Heuristic is the point-based scorer. The zero value is unusable; construct
// it with a Config.
type Heuristic struct {
	cfg Config
}

func NewHeuristic(cfg Config) *Heuristic { return &Heuristic{cfg: cfg} }

// Score starts from the neutral baseline and adds three independent
// contributions, clamping the result to [0, 100].
func (h *Heuristic) Score(t model.ClosedTrade) int {
	cfg := h.cfg
	score := cfg.Baseline

	// P&L outcome.
	switch {
	case t.NetPnL > 0:
		score += cfg.WinPoints
	case t.NetPnL > cfg.SmallLossFloor:
		score += cfg.SmallLossPoints
	}

	// Holding period. A zero holding period means the timestamp was
	// unavailable, so no judgment is made either way.
	if t.HoldingMinutes > 0 {
		switch {
		case t.HoldingMinutes < cfg.PanicExitMinutes:
			score -= cfg.PanicExitPenalty
		case t.HoldingMinutes >= cfg.GoodHoldMinMinutes && t.HoldingMinutes <= cfg.GoodHoldMaxMinutes:
			score += cfg.GoodHoldPoints
		default:
			score += cfg.OtherHoldPoints
		}
	}

	// Position size sanity.
	notional := t.Notional()
	switch {
	case notional >= cfg.NotionalMin && notional <= cfg.NotionalMax:
		score += cfg.SizedWellPoints
	case notional > cfg.NotionalMax:
		score += cfg.OversizedPoints
	default:
		score += cfg.UndersizedPoints
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Grade maps a score to its letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// Apply scores every trade in place and fills the derived per-trade fields
// (grade, win flag, percentage return).
func Apply(trades []model.ClosedTrade, s Scorer) {
	for i := range trades {
		t := &trades[i]
		t.DisciplineScore = s.Score(*t)
		t.Grade = Grade(t.DisciplineScore)
		t.Win = t.NetPnL > 0
		if t.EntryPrice != 0 {
			t.ReturnPct = model.Round2((t.ExitPrice - t.EntryPrice) / t.EntryPrice * 100)
		}
	}
}
