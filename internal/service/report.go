package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/model"
)

const (
	minReportYear = 1
	maxReportYear = 9999
)

// ParseReportPeriod parses raw year and month values. Anything that is not an
// integer, or a month outside 1..12, is an invalid range.
func ParseReportPeriod(year, month string) (model.ReportPeriod, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return model.ReportPeriod{}, apperror.NewErrInvalidRange(year, month)
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return model.ReportPeriod{}, apperror.NewErrInvalidRange(year, month)
	}

	period := model.ReportPeriod{Year: y, Month: m}
	if err := validatePeriod(period); err != nil {
		return model.ReportPeriod{}, err
	}

	return period, nil
}

func validatePeriod(p model.ReportPeriod) error {
	if p.Month < 1 || p.Month > 12 || p.Year < minReportYear || p.Year > maxReportYear {
		return apperror.NewErrInvalidRange(strconv.Itoa(p.Year), strconv.Itoa(p.Month))
	}
	return nil
}

// MonthRange returns the half-open interval [from, to) covering the calendar
// month in loc. December rolls over into January of the next year.
func MonthRange(p model.ReportPeriod, loc *time.Location) (from, to time.Time) {
	from = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	to = from.AddDate(0, 1, 0)
	return from, to
}

// BuildReport groups costs by category. Every category is present in the
// result, with an empty slice when nothing matched. Item order within a
// category follows the order of costs. Days are taken in loc.
func BuildReport(userID string, p model.ReportPeriod, costs []model.Cost, loc *time.Location) model.Report {
	grouped := make(map[model.Category][]model.ReportItem, len(model.Categories))
	for _, c := range model.Categories {
		grouped[c] = []model.ReportItem{}
	}

	for _, cost := range costs {
		items, ok := grouped[cost.Category]
		if !ok {
			continue
		}
		grouped[cost.Category] = append(items, model.ReportItem{
			Sum:         cost.Sum,
			Description: cost.Description,
			Day:         cost.CreatedAt.In(loc).Day(),
		})
	}

	return model.Report{
		UserID: userID,
		Year:   p.Year,
		Month:  p.Month,
		Costs:  grouped,
	}
}
