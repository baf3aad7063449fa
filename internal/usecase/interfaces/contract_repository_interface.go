package interfaces

import (
	"context"
	"errors"

	"estudio_admin/internal/domain/entities"
)

// ErrDepositAlreadyMarked is returned by MarkDepositPaid when another writer
// set the deposit flag first.
var ErrDepositAlreadyMarked = errors.New("deposit already marked paid")

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// Lookups return a zero Contract (empty ID) when nothing matches; the use
// case turns that into its own not-found error.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	ListByEventMonth(ctx context.Context, yearMonth string) ([]entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	SetFlag(ctx context.Context, id string, flag entities.ContractFlag, value bool) (entities.Contract, error)
	SetStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error)
	SetWorkflow(ctx context.Context, id string, wf []entities.WorkflowCategory) (entities.Contract, error)
	MarkDepositPaid(ctx context.Context, id string) (entities.Contract, error)
	Delete(ctx context.Context, id string) (bool, error)
}
