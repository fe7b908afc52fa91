package usecase

import (
	"context"
	"net/http"
	"strconv"

	"okean/internal/domain/model"
	repo "okean/internal/repository"
)

type ReportUsecase struct {
	orders     repo.OrderRepository
	products   repo.ProductRepository
	categories repo.CategoryRepository
	users      repo.UserRepository
	warehouse  repo.WarehouseRepository
	settings   repo.SettingRepository
}

func NewReportUsecase(
	orders repo.OrderRepository,
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	users repo.UserRepository,
	warehouse repo.WarehouseRepository,
	settings repo.SettingRepository,
) *ReportUsecase {
	return &ReportUsecase{
		orders:     orders,
		products:   products,
		categories: categories,
		users:      users,
		warehouse:  warehouse,
		settings:   settings,
	}
}

// DashboardOutput backs the admin landing page: headline counts,
// revenue, the latest orders and products running low on stock.
type DashboardOutput struct {
	Products     int64              `json:"products"`
	Categories   int64              `json:"categories"`
	Orders       int64              `json:"orders"`
	Users        int64              `json:"users"`
	TotalRevenue float64            `json:"total_revenue"`
	RecentOrders []model.Order      `json:"recent_orders"`
	LowStock     []model.Product    `json:"low_stock"`
	ByStatus     []repo.StatusCount `json:"by_status"`
}

func (u *ReportUsecase) Dashboard(ctx context.Context) (DashboardOutput, error) {
	var out DashboardOutput
	var err error

	if out.Products, err = u.products.Count(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.Categories, err = u.categories.Count(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.Orders, err = u.orders.Count(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.Users, err = u.users.Count(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalRevenue, err = u.orders.TotalRevenue(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.RecentOrders, err = u.orders.ListRecent(ctx, 5); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.ByStatus, err = u.orders.CountByStatus(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	low, _, err := u.warehouse.ListByStock(ctx, 1, 5)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	threshold := u.lowStockThreshold(ctx)
	for _, p := range low {
		if p.StockQuantity <= threshold {
			out.LowStock = append(out.LowStock, p)
		}
	}

	return out, nil
}

// ReportsOutput is the reports page: orders by status, overall revenue
// and the best-selling products.
type ReportsOutput struct {
	ByStatus     []repo.StatusCount `json:"by_status"`
	TotalRevenue float64            `json:"total_revenue"`
	TopProducts  []repo.TopProduct  `json:"top_products"`
}

func (u *ReportUsecase) Reports(ctx context.Context) (ReportsOutput, error) {
	var out ReportsOutput
	var err error

	if out.ByStatus, err = u.orders.CountByStatus(ctx); err != nil {
		return ReportsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalRevenue, err = u.orders.TotalRevenue(ctx); err != nil {
		return ReportsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TopProducts, err = u.orders.TopProducts(ctx, 10); err != nil {
		return ReportsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

func (u *ReportUsecase) lowStockThreshold(ctx context.Context) int64 {
	s, err := u.settings.Get(ctx, repo.SettingLowStockThreshold)
	if err != nil {
		return 10
	}
	n, err := strconv.ParseInt(s.Value, 10, 64)
	if err != nil || n < 0 {
		return 10
	}
	return n
}
