package store

import (
	"context"
	"time"

	"nexshop/internal/model"
)

// Dashboard computes the admin KPI summary and a revenue-by-day series for
// the last seven days from the session's orders. An order counts toward
// revenue once it has been paid.
func (s *Store) Dashboard(ctx context.Context, now time.Time) (model.KpiData, []model.RevenueDataPoint, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return model.KpiData{}, nil, err
	}

	now = now.UTC()
	today := now.Truncate(24 * time.Hour)
	monthStart := now.AddDate(0, 0, -30)
	weekStart := today.AddDate(0, 0, -6)

	kpi := model.KpiData{WeeklyVisits: seedWeeklyVisits}
	byDay := make(map[string]*model.RevenueDataPoint)

	for _, o := range orders {
		if o.PaidAt == nil {
			continue
		}
		kpi.TotalSales += o.Total
		if !o.CreatedAt.Before(monthStart) {
			kpi.MonthlySales += o.Total
		}
		if !o.CreatedAt.Before(today) {
			kpi.SalesToday += o.Total
		}

		if o.CreatedAt.Before(weekStart) {
			continue
		}
		day := o.CreatedAt.UTC().Format("2006-01-02")
		point := byDay[day]
		if point == nil {
			point = &model.RevenueDataPoint{Date: day}
			byDay[day] = point
		}
		point.Revenue += o.Total
		point.Orders++
	}

	series := make([]model.RevenueDataPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		if point := byDay[day]; point != nil {
			series = append(series, *point)
		} else {
			series = append(series, model.RevenueDataPoint{Date: day})
		}
	}

	return kpi, series, nil
}
