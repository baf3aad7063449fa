package interfaces

import (
	"context"

	"estudio_admin/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.DepositPayment, error)
}
