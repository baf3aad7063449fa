package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"estudio_admin/internal/domain/entities"
	mock_interfaces "estudio_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newWorkflowUseCase(t *testing.T) (*ContractUseCase, *mock_interfaces.MockIContractRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	uc := NewContractUseCase(repo, nil)
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return uc, repo
}

func TestContractUseCase_GetWorkflow(t *testing.T) {
	t.Run("default checklist with delivery tasks", func(t *testing.T) {
		uc, repo := newWorkflowUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{
			ID:         "c-1",
			StoreItems: []entities.StoreItem{{Name: "Álbum"}},
		}, nil)

		got, err := uc.GetWorkflow(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := got.Categories[len(got.Categories)-1]
		if len(last.Tasks) != 1 || last.Tasks[0].Title != "Entregar Álbum" {
			t.Fatalf("expected delivery task for the album, got %+v", last)
		}
		if got.Progress.DeliveryPercent != 0 || got.Progress.DeliveryLevel != entities.DeliveryLevelRed {
			t.Fatalf("unexpected progress %+v", got.Progress)
		}
	})

	t.Run("missing contract", func(t *testing.T) {
		uc, repo := newWorkflowUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Contract{}, nil)

		if _, err := uc.GetWorkflow(context.Background(), "c-9"); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestContractUseCase_UpdateWorkflow(t *testing.T) {
	t.Run("fills ids and computes progress", func(t *testing.T) {
		uc, repo := newWorkflowUseCase(t)
		repo.EXPECT().SetWorkflow(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, wf []entities.WorkflowCategory) (entities.Contract, error) {
				if len(wf) != 1 || wf[0].ID != "gen-2" || wf[0].Tasks[0].ID != "gen-1" || wf[0].Tasks[1].ID != "t-2" {
					t.Fatalf("ids not filled: %+v", wf)
				}
				if wf[0].Name != "Entrega" || wf[0].Tasks[0].Title != "Entregar Álbum" {
					t.Fatalf("names not trimmed: %+v", wf)
				}
				return entities.Contract{ID: id, Workflow: wf}, nil
			},
		)

		in := []entities.WorkflowCategory{{
			Name: " Entrega ",
			Tasks: []entities.WorkflowTask{
				{Title: "Entregar Álbum ", Done: true, Due: "2025-07-01"},
				{ID: "t-2", Title: "Entregar Quadro"},
			},
		}}
		got, err := uc.UpdateWorkflow(context.Background(), "c-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Progress.DeliveryPercent != 50 || got.Progress.DeliveryLevel != entities.DeliveryLevelYellow {
			t.Fatalf("unexpected progress %+v", got.Progress)
		}
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		cases := map[string][]entities.WorkflowCategory{
			"blank category": {{Name: " "}},
			"blank task":     {{Name: "Edição", Tasks: []entities.WorkflowTask{{Title: ""}}}},
			"bad due date":   {{Name: "Edição", Tasks: []entities.WorkflowTask{{Title: "Editar", Due: "01/07/2025"}}}},
			"too many":       make([]entities.WorkflowCategory, MaxWorkflowCategories+1),
		}
		for name, wf := range cases {
			t.Run(name, func(t *testing.T) {
				uc, _ := newWorkflowUseCase(t)
				if _, err := uc.UpdateWorkflow(context.Background(), "c-1", wf); !errors.Is(err, ErrInvalidWorkflow) {
					t.Fatalf("expected ErrInvalidWorkflow, got %v", err)
				}
			})
		}
	})

	t.Run("missing contract", func(t *testing.T) {
		uc, repo := newWorkflowUseCase(t)
		repo.EXPECT().SetWorkflow(gomock.Any(), "c-9", gomock.Any()).Return(entities.Contract{}, nil)

		if _, err := uc.UpdateWorkflow(context.Background(), "c-9", nil); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}
