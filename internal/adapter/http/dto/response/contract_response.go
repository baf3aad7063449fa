package response

import (
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/services"
)

type ServiceItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type StoreItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type AmountsResponse struct {
	ServicesTotal   float64 `json:"services_total"`
	StoreTotal      float64 `json:"store_total"`
	Travel          float64 `json:"travel"`
	TotalAmount     float64 `json:"total_amount"`
	DepositAmount   float64 `json:"deposit_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
}

// ContractResponse always carries freshly computed amounts and the
// effective status, never the stored snapshot.
type ContractResponse struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	EventLocation   string `json:"event_location"`
	PackageTitle    string `json:"package_title"`
	PackageDuration string `json:"package_duration"`
	PaymentMethod   string `json:"payment_method"`
	Message         string `json:"message"`

	Services   []ServiceItemResponse `json:"services"`
	StoreItems []StoreItemResponse   `json:"store_items"`
	TravelFee  float64               `json:"travel_fee"`
	Amounts    AmountsResponse       `json:"amounts"`

	DepositPaid      bool   `json:"deposit_paid"`
	FinalPaymentPaid bool   `json:"final_payment_paid"`
	EventCompleted   bool   `json:"event_completed"`
	Status           string `json:"status"`
	StatusOverride   string `json:"status_override,omitempty"`

	WorkflowProgress WorkflowProgressResponse `json:"workflow_progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAmounts(a entities.ContractAmounts) AmountsResponse {
	return AmountsResponse{
		ServicesTotal:   a.ServicesTotal.Float64(),
		StoreTotal:      a.StoreTotal.Float64(),
		Travel:          a.Travel.Float64(),
		TotalAmount:     a.TotalAmount.Float64(),
		DepositAmount:   a.DepositAmount.Float64(),
		RemainingAmount: a.RemainingAmount.Float64(),
	}
}

func FromContract(c entities.Contract) ContractResponse {
	svc := make([]ServiceItemResponse, 0, len(c.Services))
	for _, s := range c.Services {
		svc = append(svc, ServiceItemResponse{ID: s.ID, Name: s.Name, Price: s.Price, Quantity: s.Quantity})
	}
	store := make([]StoreItemResponse, 0, len(c.StoreItems))
	for _, s := range c.StoreItems {
		store = append(store, StoreItemResponse{ID: s.ID, Name: s.Name, Price: s.Price.Float64(), Quantity: s.Quantity})
	}
	return ContractResponse{
		ID:               c.ID,
		ClientName:       c.ClientName,
		ClientEmail:      c.ClientEmail,
		ClientPhone:      c.ClientPhone,
		EventType:        c.EventType,
		EventDate:        c.EventDate,
		EventTime:        c.EventTime,
		EventLocation:    c.EventLocation,
		PackageTitle:     c.PackageTitle,
		PackageDuration:  c.PackageDuration,
		PaymentMethod:    c.PaymentMethod,
		Message:          c.Message,
		Services:         svc,
		StoreItems:       store,
		TravelFee:        c.TravelFee.Float64(),
		Amounts:          FromAmounts(services.ComputeAmounts(c)),
		DepositPaid:      c.DepositPaid,
		FinalPaymentPaid: c.FinalPaymentPaid,
		EventCompleted:   c.EventCompleted,
		Status:           string(services.EffectiveStatus(c)),
		StatusOverride:   string(c.Status),
		WorkflowProgress: FromWorkflowProgress(workflowProgress(c)),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromContracts(list []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromContract(c))
	}
	return out
}

// workflowProgress only needs counts, so generated task ids are irrelevant.
func workflowProgress(c entities.Contract) entities.WorkflowProgress {
	wf := services.ResolveWorkflow(c, func() string { return "" })
	return services.ComputeWorkflowProgress(wf)
}
