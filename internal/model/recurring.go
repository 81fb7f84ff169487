package model

// RecurrenceFrequency is how often a recurring template is due.
type RecurrenceFrequency string

const (
	// FrequencyDaily recurs every day.
	FrequencyDaily RecurrenceFrequency = "daily"
	// FrequencyWeekly recurs every seven days.
	FrequencyWeekly RecurrenceFrequency = "weekly"
	// FrequencyMonthly recurs on the same day each month.
	FrequencyMonthly RecurrenceFrequency = "monthly"
	// FrequencyYearly recurs on the same day each year.
	FrequencyYearly RecurrenceFrequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f RecurrenceFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// NextDue returns the due date following from. Month and year steps follow
// time.AddDate normalization, so Jan 31 + monthly lands on Mar 2/3.
func (f RecurrenceFrequency) NextDue(from Date) Date {
	switch f {
	case FrequencyDaily:
		return from.AddDays(1)
	case FrequencyWeekly:
		return from.AddDays(7)
	case FrequencyMonthly:
		return from.AddMonths(1)
	case FrequencyYearly:
		return from.AddYears(1)
	}
	return from
}

// RecurringTransaction is a standalone schedule template. It does not
// materialize transactions by itself.
type RecurringTransaction struct {
	StartDate   Date                `json:"startDate"`
	NextDueDate Date                `json:"nextDueDate"`
	ID          string              `json:"id"`
	CategoryID  string              `json:"categoryId"`
	Note        string              `json:"note,omitempty"`
	WalletID    string              `json:"walletId"`
	Type        TransactionType     `json:"type"`
	Frequency   RecurrenceFrequency `json:"frequency"`
	Amount      float64             `json:"amount"`
}
