package interview

import "errors"

// Типизированные отказы бронирования. Никогда не паникуем: все ошибки
// возвращаются вызывающему и транслируются в HTTP-ответ на уровне handlers.
var (
	// ErrInvalidToken намеренно не различает "чужой кандидат" и "не тот
	// токен", чтобы не служить оракулом для перебора.
	ErrInvalidToken    = errors.New("invalid or expired scheduling token")
	ErrSlotConflict    = errors.New("slot conflicts with an existing interview")
	ErrSelfConflict    = errors.New("candidate already has an interview in this window")
	ErrInvalidDuration = errors.New("only 30-minute interviews are supported")

	// ErrSlotTaken возвращается хранилищем при нарушении уникальности
	// нормализованного ключа слота (проигравший конкурентной вставки).
	ErrSlotTaken = errors.New("slot already taken")
)
