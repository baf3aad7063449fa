package response

import (
	"testing"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
)

func TestFromContract_RecomputesAmounts(t *testing.T) {
	c := entities.Contract{
		ID:              "c-1",
		ClientName:      "Ana",
		EventDate:       "2025-06-10",
		Services:        []entities.ServiceItem{{Name: "Ensaio", Price: "R$ 1.000", Quantity: 1}},
		StoreItems:      []entities.StoreItem{{Name: "Álbum", Price: money.FromUnits(100), Quantity: 1}},
		TravelFee:       money.FromUnits(50),
		DepositAmount:   money.FromUnits(1),
		RemainingAmount: money.FromUnits(1),
		DepositPaid:     true,
	}

	res := FromContract(c)
	if res.Amounts.TotalAmount != 1150 {
		t.Fatalf("expected total 1150, got %v", res.Amounts.TotalAmount)
	}
	// stale snapshot is ignored
	if res.Amounts.DepositAmount != 250 || res.Amounts.RemainingAmount != 900 {
		t.Fatalf("unexpected amounts: %+v", res.Amounts)
	}
	if res.Status != string(entities.ContractStatusBooked) || res.StatusOverride != "" {
		t.Fatalf("expected derived booked status, got %q/%q", res.Status, res.StatusOverride)
	}
}

func TestFromContract_ExplicitStatus(t *testing.T) {
	res := FromContract(entities.Contract{ID: "c-1", Status: entities.ContractStatusCancelled})
	if res.Status != "cancelled" || res.StatusOverride != "cancelled" {
		t.Fatalf("unexpected status: %q/%q", res.Status, res.StatusOverride)
	}
}

func TestFromInvestment(t *testing.T) {
	paidAt := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	inv := entities.Investment{
		ID:                "inv-1",
		Date:              time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		TotalValue:        money.FromUnits(100),
		InstallmentsCount: 2,
		InstallmentValue:  money.FromUnits(50),
		Installments: []entities.Installment{
			{ID: "i1", InstallmentNumber: 1, Amount: money.FromUnits(50), DueDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Status: entities.InstallmentStatusPagado, PaidAt: &paidAt},
			{ID: "i2", InstallmentNumber: 2, Amount: money.FromUnits(50), DueDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Status: entities.InstallmentStatusPendiente},
		},
	}

	res := FromInvestment(inv)
	if res.Date != "2024-01-31" || res.TotalValue != 100 || res.InstallmentValue != 50 {
		t.Fatalf("unexpected investment fields: %+v", res)
	}
	if res.Status != "pendiente" {
		t.Fatalf("expected pendiente while one installment is open, got %s", res.Status)
	}
	if res.Installments[1].DueDate != "2024-03-02" || res.Installments[0].PaidAt == nil {
		t.Fatalf("unexpected installments: %+v", res.Installments)
	}
}

func TestFromContract_WorkflowProgress(t *testing.T) {
	c := entities.Contract{
		ID:         "c-1",
		StoreItems: []entities.StoreItem{{Name: "Álbum"}, {Name: "Quadro"}, {Name: "Pendrive"}},
		Workflow: []entities.WorkflowCategory{
			{Name: "Edição", Tasks: []entities.WorkflowTask{{Title: "Editar", Done: true}}},
			{Name: "Entrega", Tasks: []entities.WorkflowTask{
				{Title: "Entregar Álbum", Done: true},
				{Title: "Entregar Quadro", Done: true},
			}},
		},
	}

	res := FromContract(c)
	// the pendrive task is added undone, so 2 of 3 delivered
	if res.WorkflowProgress.DeliveryPercent != 67 || res.WorkflowProgress.DeliveryLevel != "green" {
		t.Fatalf("unexpected delivery progress %+v", res.WorkflowProgress)
	}
	if len(res.WorkflowProgress.Percents) != 2 || res.WorkflowProgress.Percents[0] != 100 {
		t.Fatalf("unexpected category percents %+v", res.WorkflowProgress.Percents)
	}
}
