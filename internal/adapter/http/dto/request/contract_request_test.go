package request

import (
	"testing"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
)

func TestContractRequest_ToInput(t *testing.T) {
	r := ContractRequest{
		ClientName: "Ana",
		EventDate:  "2025-06-10",
		Services:   []ServiceItemRequest{{ID: " s1 ", Name: "Ensaio", Price: "R$ 1.200", Quantity: 2}},
		StoreItems: []StoreItemRequest{{Name: "Álbum", Price: 10.5, Quantity: 1}},
		TravelFee:  150.25,
		Status:     " confirmed ",
	}

	in := r.ToInput()
	if in.Services[0].ID != "s1" || in.Services[0].Price != "R$ 1.200" || in.Services[0].Quantity != 2 {
		t.Fatalf("unexpected services: %+v", in.Services)
	}
	if in.StoreItems[0].Price != money.Cents(1050) {
		t.Fatalf("expected 1050 cents, got %d", in.StoreItems[0].Price)
	}
	if in.TravelFee != money.Cents(15025) {
		t.Fatalf("expected 15025 cents, got %d", in.TravelFee)
	}
	if in.Status != entities.ContractStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", in.Status)
	}
}

func TestInvestmentRequest_ToInput(t *testing.T) {
	r := InvestmentRequest{Date: "2024-01-31", Category: "Equipamento", TotalValue: 99.99, InstallmentsCount: 3}

	in := r.ToInput()
	if in.TotalValue != money.Cents(9999) {
		t.Fatalf("expected 9999 cents, got %d", in.TotalValue)
	}
	if in.InstallmentsCount != 3 || in.Date != "2024-01-31" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestContractRequest_ToInputSaturatesHugeAmounts(t *testing.T) {
	in := ContractRequest{TravelFee: 1e300, StoreItems: []StoreItemRequest{{Name: "Álbum", Price: 1e30}}}.ToInput()
	if in.TravelFee != money.MaxCents || in.StoreItems[0].Price != money.MaxCents {
		t.Fatalf("expected saturated amounts, got %d and %d", in.TravelFee, in.StoreItems[0].Price)
	}
}
