package usecase

import (
	"context"
	"log"
	"strings"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"
)

// IClientActivityUseCase exposes the client dashboard rollup: every real
// client with message/quotation/order counters, plus one synthesized
// ("virtual") entry per inbound inquiry that matched no client.

type IClientActivityUseCase interface {
	AggregateClientActivity(ctx context.Context) (entities.ClientActivityReport, error)
}

type ClientActivityUseCase struct {
	clients         interfaces.IClientRepository
	quotations      interfaces.IQuotationRepository
	contactRequests interfaces.IContactRequestRepository
	orders          interfaces.IOrderRepository
}

var _ IClientActivityUseCase = (*ClientActivityUseCase)(nil)

func NewClientActivityUseCase(
	clients interfaces.IClientRepository,
	quotations interfaces.IQuotationRepository,
	contactRequests interfaces.IContactRequestRepository,
	orders interfaces.IOrderRepository,
) *ClientActivityUseCase {
	return &ClientActivityUseCase{
		clients:         clients,
		quotations:      quotations,
		contactRequests: contactRequests,
		orders:          orders,
	}
}

func (u *ClientActivityUseCase) AggregateClientActivity(ctx context.Context) (entities.ClientActivityReport, error) {
	clients, err := u.clients.ListAll(ctx)
	if err != nil {
		log.Printf("[activity][usecase] failed listing clients err=%v", err)
		return entities.ClientActivityReport{}, err
	}
	quotations, err := u.quotations.ListAll(ctx)
	if err != nil {
		log.Printf("[activity][usecase] failed listing quotations err=%v", err)
		return entities.ClientActivityReport{}, err
	}
	contactRequests, err := u.contactRequests.ListAll(ctx)
	if err != nil {
		log.Printf("[activity][usecase] failed listing contact requests err=%v", err)
		return entities.ClientActivityReport{}, err
	}
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		log.Printf("[activity][usecase] failed listing orders err=%v", err)
		return entities.ClientActivityReport{}, err
	}

	report := BuildClientActivityReport(clients, quotations, contactRequests, orders)
	log.Printf("[activity][usecase] aggregated clients=%d entries=%d total_quotation_value=%.2f",
		len(clients), len(report.Clients), report.TotalQuotationValue)
	return report, nil
}

// BuildClientActivityReport is the pure aggregation over consistent snapshots
// of the four collections. It holds no state of its own: the counters are a
// function of the inputs, recomputed on every call.
//
// Quotations and orders whose client_id matches no seeded client are skipped
// silently (data gap inherited from the admin console, not an error).
func BuildClientActivityReport(
	clients []entities.Client,
	quotations []entities.Quotation,
	contactRequests []entities.ContactRequest,
	orders []entities.Order,
) entities.ClientActivityReport {
	byID := make(map[string]*entities.ClientStats, len(clients))
	ordered := make([]string, 0, len(clients))

	for _, c := range clients {
		byID[c.ID] = &entities.ClientStats{
			ID:            c.ID,
			CompanyName:   c.CompanyName,
			ContactPerson: c.ContactPerson,
			Email:         c.Email,
			Phone:         c.Phone,
			Country:       c.Country,
			City:          c.City,
			Address:       c.Address,
			UsualDiscount: c.UsualDiscount,
			Priority:      priorityOrDefault(c.Priority),
			CreatedAt:     c.CreatedAt,
			LastActivity:  c.CreatedAt,
		}
		ordered = append(ordered, c.ID)
	}

	var totalQuotationValue float64
	for _, q := range quotations {
		value := q.FinalAmount
		if value == 0 {
			value = q.TotalAmount
		}
		totalQuotationValue += value

		stats, ok := byID[q.ClientID]
		if !ok {
			continue
		}
		stats.TotalQuotations++
		if q.CreatedAt.After(stats.LastActivity) {
			stats.LastActivity = q.CreatedAt
		}
	}

	for _, o := range orders {
		stats, ok := byID[o.ClientID]
		if !ok {
			continue
		}
		stats.TotalOrders++
		value := o.FinalAmount
		if value == 0 {
			value = o.TotalAmount
		}
		stats.TotalValue += value
		if o.CreatedAt.After(stats.LastActivity) {
			stats.LastActivity = o.CreatedAt
		}
	}

	for _, r := range contactRequests {
		if stats := matchContactRequest(r, byID, ordered); stats != nil {
			stats.TotalMessages++
			if r.CreatedAt.After(stats.LastActivity) {
				stats.LastActivity = r.CreatedAt
			}
			continue
		}

		virtualID := entities.VirtualClientIDPrefix + r.ID
		byID[virtualID] = &entities.ClientStats{
			ID:            virtualID,
			CompanyName:   valueOrFallback(r.Company, "Unknown Company"),
			ContactPerson: valueOrFallback(r.Name, "Unknown Contact"),
			Email:         r.Email,
			Priority:      entities.ClientPriorityMedium,
			Virtual:       true,
			TotalMessages: 1,
			CreatedAt:     r.CreatedAt,
			LastActivity:  r.CreatedAt,
		}
		ordered = append(ordered, virtualID)
	}

	result := make([]entities.ClientStats, 0, len(ordered))
	for _, id := range ordered {
		result = append(result, *byID[id])
	}
	return entities.ClientActivityReport{Clients: result, TotalQuotationValue: totalQuotationValue}
}

// matchContactRequest attributes an inquiry to an existing entry by
// case-insensitive trimmed equality on email, company name, or contact-person
// name. Earlier virtual entries participate too, so repeat inquiries from the
// same unknown sender collapse into one entry.
func matchContactRequest(r entities.ContactRequest, byID map[string]*entities.ClientStats, ordered []string) *entities.ClientStats {
	for _, id := range ordered {
		stats := byID[id]
		if foldEqual(r.Email, stats.Email) ||
			foldEqual(r.Company, stats.CompanyName) ||
			foldEqual(r.Name, stats.ContactPerson) {
			return stats
		}
	}
	return nil
}

// foldEqual is the matching heuristic primitive: both sides non-empty and
// equal after trimming and lowercasing.
func foldEqual(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return a != "" && b != "" && a == b
}

func priorityOrDefault(p entities.ClientPriority) entities.ClientPriority {
	if p == "" {
		return entities.ClientPriorityMedium
	}
	return p
}

func valueOrFallback(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
