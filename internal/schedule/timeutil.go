package schedule

import "time"

// MondayOf возвращает начало дня понедельника той недели, в которую попадает t
// Неделя начинается с понедельника; воскресенье относится к ПРЕДЫДУЩЕМУ понедельнику
func MondayOf(t time.Time) time.Time {
	// time.Weekday: Sunday=0 ... Saturday=6
	// Смещение до понедельника: (weekday+6) mod 7
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// StartOfDay обнуляет время, оставляя только календарную дату
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что обе временные метки относятся к одной календарной дате
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
