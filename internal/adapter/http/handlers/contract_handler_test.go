package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"estudio_admin/internal/adapter/http/handlers/mocks"
	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/domain/services"
	"estudio_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newContractRouter(t *testing.T) (*gin.Engine, *mocks.MockIContractUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIContractUseCase(ctrl)
	h := NewContractHandler(uc)

	r := gin.New()
	r.POST("/v1/contracts", h.CreateContract)
	r.GET("/v1/contracts/calendar", h.ListCalendar)
	r.GET("/v1/contracts/:id", h.GetContract)
	r.PUT("/v1/contracts/:id", h.UpdateContract)
	r.DELETE("/v1/contracts/:id", h.DeleteContract)
	r.GET("/v1/contracts/:id/amounts", h.GetContractAmounts)
	r.PATCH("/v1/contracts/:id/flags/:flag", h.PatchContractFlag)
	r.PATCH("/v1/contracts/:id/status", h.PatchContractStatus)
	r.GET("/v1/contracts/:id/workflow", h.GetContractWorkflow)
	r.PUT("/v1/contracts/:id/workflow", h.UpdateContractWorkflow)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContractHandler_CreateContract(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newContractRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/contracts", `{"event_date":"2025-06-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount above bound", func(t *testing.T) {
		r, _ := newContractRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/contracts", `{"client_name":"Ana","event_date":"2025-06-10","travel_fee":1e20}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, usecase.ErrInvalidEventDate)

		w := doJSON(r, http.MethodPost, "/v1/contracts", `{"client_name":"Ana","event_date":"10/06/2025"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ContractInput) (entities.Contract, error) {
			if in.ClientName != "Ana" || len(in.Services) != 1 || in.Services[0].Price != "R$ 1.000" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.TravelFee != money.FromUnits(150) || in.StoreItems[0].Price != money.FromUnits(100) {
				t.Fatalf("unexpected money conversion: %+v", in)
			}
			return entities.Contract{
				ID:         "c-1",
				ClientName: in.ClientName,
				EventDate:  in.EventDate,
				Services:   in.Services,
				StoreItems: in.StoreItems,
				TravelFee:  in.TravelFee,
			}, nil
		})

		body := `{"client_name":"Ana","event_date":"2025-06-10",
			"services":[{"name":"Ensaio","price":"R$ 1.000","quantity":1}],
			"store_items":[{"name":"Álbum","price":100,"quantity":1}],
			"travel_fee":150}`
		w := doJSON(r, http.MethodPost, "/v1/contracts", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var out struct {
			Amounts struct {
				TotalAmount   float64 `json:"total_amount"`
				DepositAmount float64 `json:"deposit_amount"`
			} `json:"amounts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.Amounts.TotalAmount != 1250 || out.Amounts.DepositAmount != 250 {
			t.Fatalf("unexpected amounts: %+v", out.Amounts)
		}
	})
}

func TestContractHandler_GetAndDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contract{}, usecase.ErrContractNotFound)

		w := doJSON(r, http.MethodGet, "/v1/contracts/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{}, errors.New("dynamo down"))

		w := doJSON(r, http.MethodGet, "/v1/contracts/c-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/contracts/c-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestContractHandler_UpdateContract(t *testing.T) {
	r, uc := newContractRouter(t)
	uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Contract{ID: "c-1", ClientName: "Ana"}, nil)

	w := doJSON(r, http.MethodPut, "/v1/contracts/c-1", `{"client_name":"Ana","event_date":"2025-06-10"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestContractHandler_GetContractAmounts(t *testing.T) {
	r, uc := newContractRouter(t)
	uc.EXPECT().ComputeAmounts(gomock.Any(), "c-1").Return(entities.ContractAmounts{
		ServicesTotal:   money.FromUnits(1000),
		Travel:          money.FromUnits(150),
		TotalAmount:     money.FromUnits(1150),
		DepositAmount:   money.FromUnits(200),
		RemainingAmount: money.FromUnits(950),
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/contracts/c-1/amounts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["deposit_amount"] != 200 || out["remaining_amount"] != 950 {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestContractHandler_PatchContractFlag(t *testing.T) {
	t.Run("toggle without body", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().ToggleFlag(gomock.Any(), "c-1", entities.ContractFlagDepositPaid).
			Return(entities.Contract{ID: "c-1", DepositPaid: true}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/contracts/c-1/flags/depositPaid", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit value", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().SetFlag(gomock.Any(), "c-1", entities.ContractFlagEventCompleted, false).
			Return(entities.Contract{ID: "c-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/contracts/c-1/flags/eventCompleted", `{"value":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().ToggleFlag(gomock.Any(), "c-1", entities.ContractFlag("archived")).
			Return(entities.Contract{}, usecase.ErrInvalidContractFlag)

		w := doJSON(r, http.MethodPatch, "/v1/contracts/c-1/flags/archived", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestContractHandler_PatchContractStatus(t *testing.T) {
	t.Run("clears override", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "c-1", entities.ContractStatus("")).Return(entities.Contract{ID: "c-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/contracts/c-1/status", `{"status":"  "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "c-1", entities.ContractStatus("archived")).
			Return(entities.Contract{}, usecase.ErrInvalidContractStatus)

		w := doJSON(r, http.MethodPatch, "/v1/contracts/c-1/status", `{"status":"archived"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestContractHandler_ListCalendar(t *testing.T) {
	t.Run("non numeric month", func(t *testing.T) {
		r, _ := newContractRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/contracts/calendar?month=june", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes filter", func(t *testing.T) {
		r, uc := newContractRouter(t)
		want := services.CalendarFilter{Year: 2025, Month: 6, Status: "booked"}
		uc.EXPECT().ListCalendar(gomock.Any(), want).Return([]entities.Contract{{ID: "c-1", DepositPaid: true}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/contracts/calendar?year=2025&month=6&status=booked", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(out) != 1 || out[0]["status"] != "booked" {
			t.Fatalf("unexpected body: %v", out)
		}
	})
}

func TestContractHandler_Workflow(t *testing.T) {
	sample := usecase.ContractWorkflow{
		ContractID: "c-1",
		Categories: []entities.WorkflowCategory{{
			ID:    "cat-1",
			Name:  "Entrega de produtos",
			Tasks: []entities.WorkflowTask{{ID: "t-1", Title: "Entregar Álbum", Done: true}},
		}},
		Progress: entities.WorkflowProgress{
			Categories:      []entities.CategoryProgress{{CategoryID: "cat-1", Name: "Entrega de produtos", Done: 1, Total: 1, Percent: 100}},
			DeliveryPercent: 100,
			DeliveryLevel:   entities.DeliveryLevelGreen,
		},
	}

	t.Run("get", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().GetWorkflow(gomock.Any(), "c-1").Return(sample, nil)

		w := doJSON(r, http.MethodGet, "/v1/contracts/c-1/workflow", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Categories []struct {
				Percent int `json:"percent"`
			} `json:"categories"`
			Progress struct {
				DeliveryLevel string `json:"delivery_level"`
			} `json:"progress"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Categories) != 1 || body.Categories[0].Percent != 100 || body.Progress.DeliveryLevel != "green" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("put", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().UpdateWorkflow(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, wf []entities.WorkflowCategory) (usecase.ContractWorkflow, error) {
				if len(wf) != 1 || len(wf[0].Tasks) != 1 || !wf[0].Tasks[0].Done || wf[0].Tasks[0].Due != "2025-07-01" {
					t.Fatalf("payload not mapped: %+v", wf)
				}
				return sample, nil
			},
		)

		body := `{"categories":[{"name":"Entrega de produtos","tasks":[{"title":"Entregar Álbum","done":true,"due":"2025-07-01"}]}]}`
		w := doJSON(r, http.MethodPut, "/v1/contracts/c-1/workflow", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("task without title", func(t *testing.T) {
		r, _ := newContractRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/contracts/c-1/workflow", `{"categories":[{"name":"Edição","tasks":[{"done":true}]}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation", func(t *testing.T) {
		r, uc := newContractRouter(t)
		uc.EXPECT().UpdateWorkflow(gomock.Any(), "c-1", gomock.Any()).Return(usecase.ContractWorkflow{}, usecase.ErrInvalidWorkflow)

		w := doJSON(r, http.MethodPut, "/v1/contracts/c-1/workflow", `{"categories":[{"name":"Edição","tasks":[{"title":"Editar","due":"amanhã"}]}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
