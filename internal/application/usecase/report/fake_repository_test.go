package report

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/domain/entity"
)

var errFakeStore = errors.New("store unavailable")

// fakeRepository is an in-memory ReportRepository. It is safe for the
// concurrent reads the report performs once populated.
type fakeRepository struct {
	animals   []*entity.Animal
	cropTypes []*entity.CropType
	plantings []*entity.Planting
	harvests  []*entity.Harvest
	workers   []*entity.Worker
	equipment []*entity.Equipment
	expenses  []*entity.Expense
	income    []*entity.Income

	failOn string
	calls  atomic.Int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{}
}

func (f *fakeRepository) call(name string) error {
	f.calls.Add(1)
	if f.failOn == name {
		return errFakeStore
	}
	return nil
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func containsStatus(statuses []entity.PlantingStatus, s entity.PlantingStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func (f *fakeRepository) cropName(id uuid.UUID) string {
	for _, c := range f.cropTypes {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (f *fakeRepository) CountActiveAnimals(ctx context.Context) (int64, error) {
	if err := f.call("CountActiveAnimals"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range f.animals {
		if a.Status == entity.AnimalStatusActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) CountActiveAnimalsByType(ctx context.Context) ([]AnimalTypeCount, error) {
	if err := f.call("CountActiveAnimalsByType"); err != nil {
		return nil, err
	}
	counts := map[entity.AnimalType]int64{}
	for _, a := range f.animals {
		if a.Status == entity.AnimalStatusActive {
			counts[a.Type]++
		}
	}
	result := make([]AnimalTypeCount, 0, len(counts))
	for t, c := range counts {
		result = append(result, AnimalTypeCount{Type: t, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Type < result[j].Type
	})
	return result, nil
}

func (f *fakeRepository) CountAnimalsAsOf(ctx context.Context, start, end time.Time) (int64, error) {
	if err := f.call("CountAnimalsAsOf"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range f.animals {
		if a.CreatedAt.Before(end) && (a.Status == entity.AnimalStatusActive || within(a.UpdatedAt, start, end)) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) CountPlantingsByStatus(ctx context.Context, statuses []entity.PlantingStatus) (int64, error) {
	if err := f.call("CountPlantingsByStatus"); err != nil {
		return 0, err
	}
	var n int64
	for _, p := range f.plantings {
		if containsStatus(statuses, p.Status) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) CountPlantingsCreated(ctx context.Context, start, end time.Time) (int64, error) {
	if err := f.call("CountPlantingsCreated"); err != nil {
		return 0, err
	}
	var n int64
	for _, p := range f.plantings {
		if within(p.CreatedAt, start, end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) SumPlantedAreaByCropType(ctx context.Context, statuses []entity.PlantingStatus) ([]CropAreaTotal, error) {
	if err := f.call("SumPlantedAreaByCropType"); err != nil {
		return nil, err
	}
	areas := map[uuid.UUID]decimal.Decimal{}
	for _, p := range f.plantings {
		if containsStatus(statuses, p.Status) {
			areas[p.CropTypeID] = areas[p.CropTypeID].Add(p.AreaPlanted)
		}
	}
	result := make([]CropAreaTotal, 0, len(areas))
	for id, area := range areas {
		result = append(result, CropAreaTotal{CropTypeID: id, CropName: f.cropName(id), Area: area})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Area.Equal(result[j].Area) {
			return result[i].Area.GreaterThan(result[j].Area)
		}
		return result[i].CropName < result[j].CropName
	})
	return result, nil
}

func (f *fakeRepository) ListPlantingStatuses(ctx context.Context, statuses []entity.PlantingStatus) ([]PlantingStatusRecord, error) {
	if err := f.call("ListPlantingStatuses"); err != nil {
		return nil, err
	}
	var matched []*entity.Planting
	for _, p := range f.plantings {
		if containsStatus(statuses, p.Status) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].PlantingDate.Equal(matched[j].PlantingDate) {
			return matched[i].PlantingDate.Before(matched[j].PlantingDate)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	result := make([]PlantingStatusRecord, len(matched))
	for i, p := range matched {
		result[i] = PlantingStatusRecord{CropTypeID: p.CropTypeID, Status: p.Status}
	}
	return result, nil
}

func (f *fakeRepository) ListHarvests(ctx context.Context, start, end time.Time) ([]HarvestRecord, error) {
	if err := f.call("ListHarvests"); err != nil {
		return nil, err
	}
	var result []HarvestRecord
	for _, h := range f.harvests {
		if !within(h.HarvestDate, start, end) {
			continue
		}
		for _, p := range f.plantings {
			if p.ID == h.PlantingID {
				result = append(result, HarvestRecord{
					ID:          h.ID,
					PlantingID:  p.ID,
					CropTypeID:  p.CropTypeID,
					CropName:    f.cropName(p.CropTypeID),
					HarvestDate: h.HarvestDate,
					Quantity:    h.Quantity,
					SoldPrice:   h.SoldPrice,
				})
			}
		}
	}
	return result, nil
}

func (f *fakeRepository) CountActiveWorkers(ctx context.Context) (int64, error) {
	if err := f.call("CountActiveWorkers"); err != nil {
		return 0, err
	}
	var n int64
	for _, w := range f.workers {
		if w.Status == entity.WorkerStatusActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) CountNonRetiredEquipment(ctx context.Context) (int64, error) {
	if err := f.call("CountNonRetiredEquipment"); err != nil {
		return 0, err
	}
	var n int64
	for _, e := range f.equipment {
		if e.Status != entity.EquipmentStatusRetired {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) ListExpenses(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	if err := f.call("ListExpenses"); err != nil {
		return nil, err
	}
	var result []*entity.Expense
	for _, e := range f.expenses {
		if within(e.Date, start, end) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (f *fakeRepository) ListIncome(ctx context.Context, start, end time.Time) ([]*entity.Income, error) {
	if err := f.call("ListIncome"); err != nil {
		return nil, err
	}
	var result []*entity.Income
	for _, i := range f.income {
		if within(i.Date, start, end) {
			result = append(result, i)
		}
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].Date.After(result[b].Date) })
	return result, nil
}

func (f *fakeRepository) SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if err := f.call("SumExpenses"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range f.expenses {
		if within(e.Date, start, end) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (f *fakeRepository) SumIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if err := f.call("SumIncome"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, i := range f.income {
		if within(i.Date, start, end) {
			total = total.Add(i.Amount)
		}
	}
	return total, nil
}

// fakeCache is an in-memory ReportCache.
type fakeCache struct {
	mu      sync.Mutex
	reports map[string]*Report
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		reports: make(map[string]*Report),
		ttls:    make(map[string]time.Duration),
	}
}

func (c *fakeCache) Get(ctx context.Context, key string) (*Report, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	r, ok := c.reports[key]
	return r, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, report *Report, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.reports[key] = report
	c.ttls[key] = ttl
	return nil
}
