package services

import (
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// WeeksPerMonth converts a weekly amount to its monthly equivalent. The value
// is a fixed approximation carried over from the legacy data format; stored
// backups and historical reports depend on it, so it must not be replaced
// with a calendar-accurate average.
const WeeksPerMonth = 4.33

// UnassignedBucket labels expenses that reference no payment account.
const UnassignedBucket = "Unassigned"

// reportService computes monthly aggregations.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// FilterDailyByMonth returns the expenses whose calendar date falls in the
// exact month and year, preserving input order. Dates are stored as UTC
// midnights, so the comparison normalizes to UTC: a driver returning local
// times must not shift a month-boundary expense into the adjacent month.
func FilterDailyByMonth(expenses []models.DailyExpense, month time.Month, year int) []models.DailyExpense {
	var filtered []models.DailyExpense
	for _, e := range expenses {
		date := e.Date.UTC()
		if date.Month() == month && date.Year() == year {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MonthlyEquivalentCents normalizes a recurring expense to a per-month figure
// in fractional cents. Full precision is kept here; rounding happens only at
// the presentation boundary.
func MonthlyEquivalentCents(e models.RecurringExpense) float64 {
	switch e.Frequency {
	case models.FrequencyWeekly:
		return float64(e.AmountCents) * WeeksPerMonth
	case models.FrequencyYearly:
		return float64(e.AmountCents) / 12
	default:
		return float64(e.AmountCents)
	}
}

// TotalRecurringMonthlyCents sums the monthly equivalents of every standing
// obligation. Recurring totals are never filtered by date: they represent the
// projected monthly burden regardless of which month is being viewed.
func TotalRecurringMonthlyCents(expenses []models.RecurringExpense) float64 {
	var total float64
	for _, e := range expenses {
		total += MonthlyEquivalentCents(e)
	}
	return total
}

// MonthlyReport aggregates one calendar month of the user's spending: daily
// expenses filtered to the month, recurring expenses normalized to monthly
// equivalents, grouped by category and by payment account.
func (s *reportService) MonthlyReport(userID string, month time.Month, year int) (*MonthlyReport, error) {
	var daily []models.DailyExpense
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&daily).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var recurring []models.RecurringExpense
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&recurring).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	dailyMonth := FilterDailyByMonth(daily, month, year)

	var dailyTotalCents int64
	for _, e := range dailyMonth {
		dailyTotalCents += e.AmountCents
	}
	recurringTotalCents := TotalRecurringMonthlyCents(recurring)

	return &MonthlyReport{
		Month:                 int(month),
		Year:                  year,
		DailyTotal:            centsToAmount(float64(dailyTotalCents)),
		RecurringMonthlyTotal: centsToAmount(recurringTotalCents),
		CombinedTotal:         centsToAmount(float64(dailyTotalCents) + recurringTotalCents),
		ByCategory:            totalsByCategory(dailyMonth),
		ByAccount:             totalsByAccount(dailyMonth, recurring, names),
	}, nil
}

// totalsByCategory sums the filtered daily expenses per category, sorted by
// descending total.
func totalsByCategory(daily []models.DailyExpense) []CategoryTotal {
	sums := make(map[string]int64)
	for _, e := range daily {
		sums[e.Category] += e.AmountCents
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, cents := range sums {
		totals = append(totals, CategoryTotal{
			Category: category,
			Amount:   centsToAmount(float64(cents)),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// totalsByAccount buckets daily amounts and recurring monthly equivalents by
// resolved account name. A bucket exists only when at least one record
// contributes to it; expenses without an account reference fall into the
// Unassigned bucket.
func totalsByAccount(daily []models.DailyExpense, recurring []models.RecurringExpense, names map[string]string) []AccountTotal {
	type bucket struct {
		dailyCents     int64
		recurringCents float64
	}
	buckets := make(map[string]*bucket)

	get := func(accountID *string) *bucket {
		name := UnassignedBucket
		if accountID != nil {
			if n, ok := names[*accountID]; ok {
				name = n
			}
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
		}
		return b
	}

	for _, e := range daily {
		get(e.AccountID).dailyCents += e.AmountCents
	}
	for _, e := range recurring {
		get(e.AccountID).recurringCents += MonthlyEquivalentCents(e)
	}

	totals := make([]AccountTotal, 0, len(buckets))
	for name, b := range buckets {
		totalCents := float64(b.dailyCents) + b.recurringCents
		totals = append(totals, AccountTotal{
			Account:   name,
			Daily:     centsToAmount(float64(b.dailyCents)),
			Recurring: centsToAmount(b.recurringCents),
			Total:     centsToAmount(totalCents),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Account < totals[j].Account
	})
	return totals
}

// centsToAmount rounds fractional cents to whole cents and converts to
// currency units. This is the single presentation-time rounding point.
func centsToAmount(cents float64) float64 {
	return math.Round(cents) / 100
}
