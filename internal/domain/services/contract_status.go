package services

import (
	"sort"
	"strconv"
	"strings"

	"estudio_admin/internal/domain/entities"
)

// StatusAll disables status filtering in a CalendarFilter.
const StatusAll = "all"

// EffectiveStatus is the explicit status when one was set, otherwise it is
// derived from the payment and completion flags.
func EffectiveStatus(c entities.Contract) entities.ContractStatus {
	if c.Status != "" {
		return c.Status
	}
	if c.EventCompleted && c.FinalPaymentPaid {
		return entities.ContractStatusDelivered
	}
	if !c.DepositPaid {
		return entities.ContractStatusPendingPayment
	}
	return entities.ContractStatusBooked
}

// CalendarFilter selects contracts for the admin calendar.
// Zero Year or Month matches any; Status "" or "all" matches any.
type CalendarFilter struct {
	Year   int
	Month  int
	Status string
}

func (f CalendarFilter) Matches(c entities.Contract) bool {
	if f.Year != 0 || f.Month != 0 {
		day, ok := c.EventDay()
		if !ok {
			return false
		}
		if f.Year != 0 && day.Year() != f.Year {
			return false
		}
		if f.Month != 0 && int(day.Month()) != f.Month {
			return false
		}
	}
	status := strings.TrimSpace(f.Status)
	if status == "" || status == StatusAll {
		return true
	}
	return string(EffectiveStatus(c)) == status
}

// FilterCalendar returns the matching contracts ordered by event date, event
// time and client name. The input slice is not modified.
func FilterCalendar(contracts []entities.Contract, f CalendarFilter) []entities.Contract {
	out := make([]entities.Contract, 0, len(contracts))
	for _, c := range contracts {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EventDate != b.EventDate {
			return a.EventDate < b.EventDate
		}
		ma, mb := EventMinutes(a.EventTime), EventMinutes(b.EventTime)
		if ma != mb {
			return ma < mb
		}
		return a.ClientName < b.ClientName
	})
	return out
}

// EventMinutes converts "HH:mm" to minutes after midnight; anything
// unparseable counts as midnight.
func EventMinutes(hhmm string) int {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}
