package utils

import "time"

// PakistanLocation возвращает часовой пояс агентства
func PakistanLocation() *time.Location {
	// Пакистан: UTC+5, без перехода на летнее время
	loc, err := time.LoadLocation("Asia/Karachi")
	if err != nil {
		// Если не удалось загрузить часовой пояс, используем UTC+5
		return time.FixedZone("PKT", 5*60*60)
	}
	return loc
}

// ParseBackendDatetime разбирает datetime из Core API. Бэкенд отдает либо
// RFC3339, либо "2006-01-02T15:04:05" без зоны (тогда считаем местным временем).
func ParseBackendDatetime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(PakistanLocation()), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, PakistanLocation()); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatTimeOfDay форматирует местное время плеча, "03:15 PM"
func FormatTimeOfDay(t time.Time) string {
	return t.Format("03:04 PM")
}

// FormatShortDate форматирует дату плеча, "02 Jan 2006"
func FormatShortDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}
