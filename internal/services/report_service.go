package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"logitrack/internal/models"
	"logitrack/internal/utils"
	"logitrack/pkg/logger"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ReportView is one rendered page of the delivery dashboard together
// with aggregates over the whole matched set.
type ReportView struct {
	Deliveries []*models.Delivery    `json:"deliveries"`
	Pagination *utils.PaginationMeta `json:"pagination"`
	Totals     *ReportTotals         `json:"totals"`
}

// ReportTotals aggregates the filtered result set, not just the visible
// page. AveragePricePerKg is revenue divided by weight, 0 on an empty
// or weightless set.
type ReportTotals struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalRevenueFormatted string  `json:"totalRevenueFormatted"`
	TotalWeightKg         float64 `json:"totalWeightKg"`
	AveragePricePerKg     float64 `json:"averagePricePerKg"`
	MatchedCount          int     `json:"matchedCount"`
}

type ReportService interface {
	// BuildView filters, sorts and paginates the delivery list.
	BuildView(ctx context.Context, query utils.ReportQuery) (*ReportView, error)
}

type reportService struct {
	deliveryService DeliveryService
	collator        *collate.Collator
	logger          *logger.Logger
}

func NewReportService(deliveryService DeliveryService, logger *logger.Logger) ReportService {
	return &reportService{
		deliveryService: deliveryService,
		collator:        collate.New(language.French, collate.IgnoreCase),
		logger:          logger,
	}
}

func (s *reportService) BuildView(ctx context.Context, query utils.ReportQuery) (*ReportView, error) {
	deliveries, err := s.deliveryService.ListDeliveries(ctx)
	if err != nil {
		return nil, err
	}

	// Newest entries first unless an explicit sort is requested.
	rows := make([]*models.Delivery, len(deliveries))
	for i, d := range deliveries {
		rows[len(deliveries)-1-i] = d
	}

	rows = s.applyFilters(rows, query)
	totals := computeTotals(rows)

	if query.SortColumn != "" {
		s.sortRows(rows, query.SortColumn, query.SortDesc)
	}

	lo, hi := utils.PageBounds(query.Page, query.PageSize, len(rows))
	page := rows[lo:hi]

	return &ReportView{
		Deliveries: page,
		Pagination: utils.NewPaginationMeta(query.Page, query.PageSize, len(rows)),
		Totals:     totals,
	}, nil
}

func (s *reportService) applyFilters(rows []*models.Delivery, query utils.ReportQuery) []*models.Delivery {
	term := strings.ToLower(strings.TrimSpace(query.SearchTerm))
	start, hasStart := utils.ParseDate(query.StartDate)
	end, hasEnd := utils.ParseDate(query.EndDate)
	dateFiltered := hasStart || hasEnd

	if term == "" && !dateFiltered {
		return rows
	}

	filtered := rows[:0]
	for _, d := range rows {
		if term != "" && !matchesSearch(d, term) {
			continue
		}
		if dateFiltered {
			// Records whose stored date no longer parses are excluded
			// from date-filtered views rather than matched blindly.
			date, ok := utils.ParseDate(d.Date)
			if !ok || !withinDateRange(date, start, hasStart, end, hasEnd) {
				continue
			}
		}
		filtered = append(filtered, d)
	}
	return filtered
}

func matchesSearch(d *models.Delivery, term string) bool {
	return strings.Contains(strings.ToLower(d.Client), term) ||
		strings.Contains(strings.ToLower(d.DepartureLocation), term) ||
		strings.Contains(strings.ToLower(d.Destination), term) ||
		strings.Contains(strings.ToLower(d.Goods), term)
}

func withinDateRange(date time.Time, start time.Time, hasStart bool, end time.Time, hasEnd bool) bool {
	if hasStart && date.Before(start) {
		return false
	}
	if hasEnd && date.After(end) {
		return false
	}
	return true
}

func (s *reportService) sortRows(rows []*models.Delivery, column string, desc bool) {
	var less func(a, b *models.Delivery) bool

	switch column {
	case utils.SortColumnDate:
		less = func(a, b *models.Delivery) bool { return a.Date < b.Date }
	case utils.SortColumnClient:
		less = func(a, b *models.Delivery) bool { return s.collator.CompareString(a.Client, b.Client) < 0 }
	case utils.SortColumnDepartureLocation:
		less = func(a, b *models.Delivery) bool {
			return s.collator.CompareString(a.DepartureLocation, b.DepartureLocation) < 0
		}
	case utils.SortColumnDestination:
		less = func(a, b *models.Delivery) bool {
			return s.collator.CompareString(a.Destination, b.Destination) < 0
		}
	case utils.SortColumnGoods:
		less = func(a, b *models.Delivery) bool { return s.collator.CompareString(a.Goods, b.Goods) < 0 }
	case utils.SortColumnWeightKg:
		less = func(a, b *models.Delivery) bool { return a.WeightKg < b.WeightKg }
	case utils.SortColumnPricePerKg:
		less = func(a, b *models.Delivery) bool { return a.PricePerKg < b.PricePerKg }
	case utils.SortColumnTotalAriary:
		less = func(a, b *models.Delivery) bool { return a.TotalAriary < b.TotalAriary }
	default:
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func computeTotals(rows []*models.Delivery) *ReportTotals {
	totals := &ReportTotals{MatchedCount: len(rows)}
	for _, d := range rows {
		totals.TotalRevenue += d.TotalAriary
		totals.TotalWeightKg += d.WeightKg
	}
	if totals.TotalWeightKg > 0 {
		totals.AveragePricePerKg = utils.RoundAriary(totals.TotalRevenue / totals.TotalWeightKg)
	}
	totals.TotalRevenue = utils.RoundAriary(totals.TotalRevenue)
	totals.TotalRevenueFormatted = utils.FormatAriary(totals.TotalRevenue)
	return totals
}
