package usecase

import (
	"context"
	"errors"
	"log"
	"sort"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"
)

var ErrInvalidRankingSource = errors.New("invalid product ranking source")

// ProductRankingSource selects which line-item collection feeds the
// top-products report.
type ProductRankingSource string

const (
	RankingSourceQuotations ProductRankingSource = "quotations"
	RankingSourceOrders     ProductRankingSource = "orders"
)

// topProductsLimit caps the rankings the reports screen displays.
const topProductsLimit = 20

// IBusinessReportUseCase exposes the reporting projections: top-quoted and
// top-ordered products, per-client conversion summaries, and the dashboard
// order buckets.

type IBusinessReportUseCase interface {
	TopProducts(ctx context.Context, source ProductRankingSource) ([]entities.ProductRanking, error)
	ClientSummaries(ctx context.Context) ([]entities.ClientReport, error)
	OrderStats(ctx context.Context) (entities.OrderStats, error)
}

type BusinessReportUseCase struct {
	clients    interfaces.IClientRepository
	quotations interfaces.IQuotationRepository
	orders     interfaces.IOrderRepository
}

var _ IBusinessReportUseCase = (*BusinessReportUseCase)(nil)

func NewBusinessReportUseCase(
	clients interfaces.IClientRepository,
	quotations interfaces.IQuotationRepository,
	orders interfaces.IOrderRepository,
) *BusinessReportUseCase {
	return &BusinessReportUseCase{clients: clients, quotations: quotations, orders: orders}
}

func (u *BusinessReportUseCase) TopProducts(ctx context.Context, source ProductRankingSource) ([]entities.ProductRanking, error) {
	var lines []productLine
	switch source {
	case RankingSourceQuotations:
		items, err := u.quotations.ListAllItems(ctx)
		if err != nil {
			log.Printf("[reports][usecase] failed listing quotation items err=%v", err)
			return nil, err
		}
		lines = quotationItemLines(items)
	case RankingSourceOrders:
		items, err := u.orders.ListAllItems(ctx)
		if err != nil {
			log.Printf("[reports][usecase] failed listing order items err=%v", err)
			return nil, err
		}
		lines = orderItemLines(items)
	default:
		return nil, ErrInvalidRankingSource
	}

	return rankProductLines(lines, topProductsLimit), nil
}

func (u *BusinessReportUseCase) ClientSummaries(ctx context.Context) ([]entities.ClientReport, error) {
	clients, err := u.clients.ListAll(ctx)
	if err != nil {
		log.Printf("[reports][usecase] failed listing clients err=%v", err)
		return nil, err
	}
	quotations, err := u.quotations.ListAll(ctx)
	if err != nil {
		log.Printf("[reports][usecase] failed listing quotations err=%v", err)
		return nil, err
	}
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		log.Printf("[reports][usecase] failed listing orders err=%v", err)
		return nil, err
	}

	return BuildClientSummaries(clients, quotations, orders), nil
}

func (u *BusinessReportUseCase) OrderStats(ctx context.Context) (entities.OrderStats, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		log.Printf("[reports][usecase] failed listing orders err=%v", err)
		return entities.OrderStats{}, err
	}
	return BuildOrderStats(orders), nil
}

// productLine is the product/quantity/price view shared by quotation and
// order items for ranking purposes.
type productLine struct {
	productID string
	quantity  int
	unitPrice float64
}

func quotationItemLines(items []entities.QuotationItem) []productLine {
	lines := make([]productLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, productLine{productID: it.ProductID, quantity: it.Quantity, unitPrice: it.UnitPrice})
	}
	return lines
}

func orderItemLines(items []entities.OrderItem) []productLine {
	lines := make([]productLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, productLine{productID: it.ProductID, quantity: it.Quantity, unitPrice: it.UnitPrice})
	}
	return lines
}

// rankProductLines groups lines by product, sums quantity and
// quantity×unit_price, sorts by summed quantity descending (ties keep first-
// seen input order), and truncates to limit.
func rankProductLines(lines []productLine, limit int) []entities.ProductRanking {
	index := make(map[string]int, len(lines))
	rankings := make([]entities.ProductRanking, 0, len(lines))

	for _, line := range lines {
		i, ok := index[line.productID]
		if !ok {
			i = len(rankings)
			index[line.productID] = i
			rankings = append(rankings, entities.ProductRanking{ProductID: line.productID})
		}
		rankings[i].TotalQuantity += line.quantity
		rankings[i].TotalAmount += float64(line.quantity) * line.unitPrice
	}

	sort.SliceStable(rankings, func(a, b int) bool {
		return rankings[a].TotalQuantity > rankings[b].TotalQuantity
	})
	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}

// BuildClientSummaries computes the per-client conversion report. A client
// with zero quotations reports a conversion rate of 0, never a division
// error.
func BuildClientSummaries(clients []entities.Client, quotations []entities.Quotation, orders []entities.Order) []entities.ClientReport {
	reports := make([]entities.ClientReport, 0, len(clients))
	for _, c := range clients {
		report := entities.ClientReport{ClientID: c.ID, CompanyName: c.CompanyName}

		for _, q := range quotations {
			if q.ClientID != c.ID {
				continue
			}
			report.TotalQuotations++
			report.TotalQuotationAmount += q.FinalAmount
		}
		for _, o := range orders {
			if o.ClientID != c.ID {
				continue
			}
			report.TotalOrders++
			report.TotalOrderAmount += o.FinalAmount
		}

		if report.TotalQuotations > 0 {
			report.ConversionRate = float64(report.TotalOrders) / float64(report.TotalQuotations) * 100
		}
		reports = append(reports, report)
	}
	return reports
}

// BuildOrderStats fills the dashboard buckets the admin landing page shows.
func BuildOrderStats(orders []entities.Order) entities.OrderStats {
	stats := entities.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.OrderStatus {
		case entities.OrderStatusWaitingPayment:
			stats.WaitingPayment++
		case entities.OrderStatusConfirmingSupplier:
			stats.ConfirmingSupplier++
		case entities.OrderStatusShipmentReady:
			stats.ShipmentReady++
		case entities.OrderStatusDelivered:
			stats.Delivered++
		}
		stats.TotalValue += o.FinalAmount
	}
	return stats
}
