package interview

import "time"

// Окно самозаписи: воскресенье–четверг, старты с 11:00 по 14:00
// включительно, только :00 и :30. Админский путь это окно не проверяет.
const (
	windowOpenHour  = 11
	windowCloseHour = 14
)

// WindowError — нарушение правил окна самозаписи. Каждое правило даёт
// собственное сообщение, чтобы кандидат мог исправить ввод.
type WindowError struct {
	Reason string
}

func (e *WindowError) Error() string { return e.Reason }

var (
	ErrDateInPast     = &WindowError{Reason: "дата уже прошла — выберите сегодняшний или будущий день"}
	ErrTimeInPast     = &WindowError{Reason: "это время сегодня уже прошло — выберите более поздний слот"}
	ErrDayNotAllowed  = &WindowError{Reason: "запись возможна только с воскресенья по четверг"}
	ErrHourOutOfRange = &WindowError{Reason: "слоты доступны с 11:00 до 14:00, последний старт — 14:00"}
	ErrBadGranularity = &WindowError{Reason: "время должно начинаться ровно в :00 или :30"}
)

// WindowValidator проверяет предложенное кандидатом время против окна
// самозаписи. Таймзона и источник времени передаются явно, валидатор чистый.
type WindowValidator struct {
	loc *time.Location
	now func() time.Time
}

func NewWindowValidator(loc *time.Location, now func() time.Time) *WindowValidator {
	return &WindowValidator{loc: loc, now: now}
}

// Validate применяет правила по порядку; первое нарушенное и возвращается.
func (v *WindowValidator) Validate(at time.Time) error {
	now := v.now().In(v.loc)
	local := at.In(v.loc)

	ny, nm, nd := now.Date()
	ly, lm, ld := local.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, v.loc)
	day := time.Date(ly, lm, ld, 0, 0, 0, 0, v.loc)

	if day.Before(today) {
		return ErrDateInPast
	}
	if day.Equal(today) && !local.After(now) {
		return ErrTimeInPast
	}
	switch local.Weekday() {
	case time.Friday, time.Saturday:
		return ErrDayNotAllowed
	}
	h, m := local.Hour(), local.Minute()
	if h < windowOpenHour || h > windowCloseHour || (h == windowCloseHour && m > 0) {
		return ErrHourOutOfRange
	}
	if (m != 0 && m != 30) || local.Second() != 0 {
		return ErrBadGranularity
	}
	return nil
}
