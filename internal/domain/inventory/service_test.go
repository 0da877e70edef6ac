package inventory

import (
	"context"
	"sort"
	"testing"
)

type mockRepo struct {
	nextID   int64
	vaccines map[int64]*Vaccine
	items    map[int64]*Item
}

func newMockRepo() *mockRepo {
	return &mockRepo{vaccines: make(map[int64]*Vaccine), items: make(map[int64]*Item)}
}

func (m *mockRepo) ListVaccines(_ context.Context) ([]*Vaccine, error) {
	var items []*Vaccine
	for _, v := range m.vaccines {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *mockRepo) GetVaccineName(_ context.Context, id int64) (string, error) {
	v, ok := m.vaccines[id]
	if !ok {
		return "", ErrVaccineNotFound
	}
	return v.Name, nil
}

func (m *mockRepo) ListItems(_ context.Context) ([]*Item, error) {
	var items []*Item
	for _, it := range m.items {
		items = append(items, it)
	}
	return items, nil
}

func (m *mockRepo) AddItem(_ context.Context, item *Item) error {
	m.nextID++
	item.ID = m.nextID
	m.items[item.ID] = item
	return nil
}

func (m *mockRepo) ListLowStock(_ context.Context, threshold int) ([]*LowStockItem, error) {
	var items []*LowStockItem
	for _, it := range m.items {
		if it.Quantity <= threshold {
			items = append(items, &LowStockItem{
				ID: it.ID, Name: it.VaccineName,
				QuantityInStock: it.Quantity, ReorderLevel: threshold,
			})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	repo.vaccines[1] = &Vaccine{ID: 1, Name: "MMR", VaccineID: "MMR-2"}
	return NewService(repo), repo
}

func validInput() Input {
	return Input{VaccineID: 1, BatchNumber: "B-901", ExpiryDate: "2026-06-30", Quantity: 40}
}

func TestAddItem_ResolvesNameAndStatus(t *testing.T) {
	svc, _ := newTestService()
	item, err := svc.AddItem(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.VaccineName != "MMR" {
		t.Errorf("expected denormalized vaccine name, got %q", item.VaccineName)
	}
	if item.Status != StatusAvailable {
		t.Errorf("expected Available, got %q", item.Status)
	}
}

func TestAddItem_UnknownVaccine(t *testing.T) {
	svc, _ := newTestService()
	in := validInput()
	in.VaccineID = 99
	if _, err := svc.AddItem(context.Background(), in); err != ErrVaccineNotFound {
		t.Errorf("expected ErrVaccineNotFound, got %v", err)
	}
}

func TestAddItem_Required(t *testing.T) {
	svc, _ := newTestService()
	fields := []func(*Input){
		func(in *Input) { in.VaccineID = 0 },
		func(in *Input) { in.BatchNumber = "" },
		func(in *Input) { in.ExpiryDate = "" },
		func(in *Input) { in.Quantity = 0 },
	}
	for i, clear := range fields {
		in := validInput()
		clear(&in)
		if _, err := svc.AddItem(context.Background(), in); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestLowStock(t *testing.T) {
	svc, _ := newTestService()
	low := validInput()
	low.Quantity = 3
	if _, err := svc.AddItem(context.Background(), low); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.AddItem(context.Background(), validInput()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	items, err := svc.LowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one low-stock batch, got %d", len(items))
	}
	if items[0].QuantityInStock != 3 || items[0].ReorderLevel != LowStockThreshold {
		t.Errorf("unexpected low-stock shape: %+v", items[0])
	}
}
