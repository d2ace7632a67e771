package report

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// ComposeLivestockPerformance attaches livestock sale revenue to each animal type.
// Income counts towards a type when its category is LIVESTOCK_SALE and its
// description mentions the type name, case-insensitively. One sale can match
// several types.
func ComposeLivestockPerformance(byType []AnimalTypeCount, income []*entity.Income) []LivestockPerformance {
	performance := make([]LivestockPerformance, 0, len(byType))
	for _, tc := range byType {
		name := tc.Type.MatchName()
		revenue := decimal.Zero
		for _, in := range income {
			if in.Category != entity.IncomeCategoryLivestockSale {
				continue
			}
			if strings.Contains(strings.ToLower(in.Description), name) {
				revenue = revenue.Add(in.Amount)
			}
		}
		performance = append(performance, LivestockPerformance{
			Type:    tc.Type,
			Count:   tc.Count,
			Revenue: revenue,
		})
	}
	return performance
}

// ComposeCropPerformance joins planted area with in-window harvest totals and
// the dominant planting status of each crop type.
func ComposeCropPerformance(areas []CropAreaTotal, statuses []PlantingStatusRecord, harvests []HarvestRecord) []CropPerformance {
	type harvestTotals struct {
		quantity decimal.Decimal
		revenue  decimal.Decimal
	}
	totals := make(map[uuid.UUID]*harvestTotals)
	for _, h := range harvests {
		t, ok := totals[h.CropTypeID]
		if !ok {
			t = &harvestTotals{quantity: decimal.Zero, revenue: decimal.Zero}
			totals[h.CropTypeID] = t
		}
		t.quantity = t.quantity.Add(h.Quantity)
		t.revenue = t.revenue.Add(h.SoldPrice)
	}

	byCrop := make(map[uuid.UUID][]entity.PlantingStatus)
	for _, s := range statuses {
		byCrop[s.CropTypeID] = append(byCrop[s.CropTypeID], s.Status)
	}

	performance := make([]CropPerformance, 0, len(areas))
	for _, a := range areas {
		cp := CropPerformance{
			CropTypeID: a.CropTypeID,
			Crop:       a.CropName,
			Area:       a.Area,
			Yield:      decimal.Zero,
			Revenue:    decimal.Zero,
			Status:     MostFrequentStatus(byCrop[a.CropTypeID]),
		}
		if t, ok := totals[a.CropTypeID]; ok {
			cp.Yield = t.quantity
			cp.Revenue = t.revenue
		}
		performance = append(performance, cp)
	}
	return performance
}

// MostFrequentStatus returns the status occurring most often in statuses.
// Ties go to the status encountered first. Empty input yields "".
func MostFrequentStatus(statuses []entity.PlantingStatus) entity.PlantingStatus {
	counts := make(map[entity.PlantingStatus]int, len(statuses))
	var best entity.PlantingStatus
	bestCount := 0
	for _, s := range statuses {
		counts[s]++
	}
	for _, s := range statuses {
		if counts[s] > bestCount {
			best = s
			bestCount = counts[s]
		}
	}
	return best
}
