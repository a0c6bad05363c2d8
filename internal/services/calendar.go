package services

import (
	"fmt"
	"time"
)

var ptShortMonths = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

var ptMonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// monthStart returns midnight on the first day of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// shortMonthLabel formats a month as "set/26".
func shortMonthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%02d", ptShortMonths[t.Month()-1], t.Year()%100)
}

// fullMonthLabel formats a month as "Setembro 2026".
func fullMonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", ptMonthNames[t.Month()-1], t.Year())
}

// monthKey returns a sortable year-month key, e.g. "2026-09".
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
