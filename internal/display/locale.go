// Package display turns the locale-independent results of the pricing core
// into names and sentences for people. Nothing outside this package knows a
// weekday or month name.
package display

import (
	"time"

	"golang.org/x/text/language"
)

// Locale is a supported presentation language.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

var (
	supportedTags = []language.Tag{language.English, language.Spanish}
	matcher       = language.NewMatcher(supportedTags)
)

// MatchLocale picks the best supported locale for an Accept-Language style
// value. Anything unrecognised falls back to English.
func MatchLocale(preference string) Locale {
	if preference == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	if supportedTags[index] == language.Spanish {
		return Spanish
	}
	return English
}

var weekdayNames = map[Locale][7]string{
	English: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	Spanish: {"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
}

var monthNames = map[Locale][12]string{
	English: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	Spanish: {"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
}

func names(l Locale) Locale {
	if _, ok := weekdayNames[l]; ok {
		return l
	}
	return English
}

// WeekdayName returns the display name of d.
func WeekdayName(l Locale, d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdayNames[names(l)][d]
}

// MonthName returns the display name of m.
func MonthName(l Locale, m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[names(l)][m-1]
}

// MonthNames maps a list of months to display names, keeping order.
func MonthNames(l Locale, months []time.Month) []string {
	out := make([]string, 0, len(months))
	for _, m := range months {
		out = append(out, MonthName(l, m))
	}
	return out
}
