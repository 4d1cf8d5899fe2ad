package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Checker решает, пересекается ли предложенный слот с уже назначенными
// собеседованиями. Ресурс один (интервьюер/переговорка), поэтому два
// 30-минутных слота конфликтуют, если их старты ближе 30 минут друг к другу.
// Только чтение, без побочных эффектов.
type Checker struct {
	repo Repository
}

func NewChecker(repo Repository) *Checker { return &Checker{repo: repo} }

func window(at time.Time) (from, to time.Time) {
	return at.Add(-SlotDuration), at.Add(SlotDuration)
}

// Global: конфликт с любым SCHEDULED-собеседованием на общем ресурсе.
func (c *Checker) Global(ctx context.Context, at time.Time) (bool, error) {
	from, to := window(at)
	return c.repo.ExistsScheduledBetween(ctx, from, to)
}

// ForCandidate: тот же тест, ограниченный собеседованиями самого кандидата.
// Защита от двойной самозаписи; на практике Global уже покрывает этот случай.
func (c *Checker) ForCandidate(ctx context.Context, candidateID uuid.UUID, at time.Time) (bool, error) {
	from, to := window(at)
	return c.repo.ExistsScheduledForCandidateBetween(ctx, candidateID, from, to)
}
