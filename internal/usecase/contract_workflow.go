package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/services"

	"github.com/rs/zerolog/log"
)

const (
	MaxWorkflowCategories = 30
	MaxWorkflowTasks      = 100
)

var ErrInvalidWorkflow = errors.New("invalid workflow")

// ContractWorkflow is the production checklist of a contract with its
// computed progress.
type ContractWorkflow struct {
	ContractID string
	Categories []entities.WorkflowCategory
	Progress   entities.WorkflowProgress
}

// GetWorkflow returns the stored checklist, or the default one when none was
// saved, with one delivery task per store item.
func (u *ContractUseCase) GetWorkflow(ctx context.Context, id string) (ContractWorkflow, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return ContractWorkflow{}, err
	}
	return u.resolveWorkflow(c), nil
}

// UpdateWorkflow replaces the checklist. Missing ids are generated and done
// flags are kept as sent.
func (u *ContractUseCase) UpdateWorkflow(ctx context.Context, id string, wf []entities.WorkflowCategory) (ContractWorkflow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ContractWorkflow{}, ErrInvalidContractID
	}
	clean, err := u.normalizeWorkflow(wf)
	if err != nil {
		return ContractWorkflow{}, err
	}

	updated, err := u.repo.SetWorkflow(ctx, id, clean)
	if err != nil {
		log.Error().Err(err).Str("component", "contract-usecase").Str("contract_id", id).Msg("workflow update failed")
		return ContractWorkflow{}, err
	}
	if updated.ID == "" {
		return ContractWorkflow{}, ErrContractNotFound
	}

	out := u.resolveWorkflow(updated)
	log.Info().
		Str("component", "contract-usecase").
		Str("contract_id", id).
		Int("categories", len(out.Categories)).
		Int("delivery_percent", out.Progress.DeliveryPercent).
		Msg("workflow saved")
	return out, nil
}

func (u *ContractUseCase) resolveWorkflow(c entities.Contract) ContractWorkflow {
	wf := services.ResolveWorkflow(c, u.newID)
	return ContractWorkflow{
		ContractID: c.ID,
		Categories: wf,
		Progress:   services.ComputeWorkflowProgress(wf),
	}
}

func (u *ContractUseCase) normalizeWorkflow(wf []entities.WorkflowCategory) ([]entities.WorkflowCategory, error) {
	if len(wf) > MaxWorkflowCategories {
		return nil, fmt.Errorf("%w: at most %d categories", ErrInvalidWorkflow, MaxWorkflowCategories)
	}
	out := make([]entities.WorkflowCategory, 0, len(wf))
	for _, cat := range wf {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category without name", ErrInvalidWorkflow)
		}
		if len(cat.Tasks) > MaxWorkflowTasks {
			return nil, fmt.Errorf("%w: category %q has more than %d tasks", ErrInvalidWorkflow, name, MaxWorkflowTasks)
		}
		tasks := make([]entities.WorkflowTask, 0, len(cat.Tasks))
		for _, t := range cat.Tasks {
			title := strings.TrimSpace(t.Title)
			if title == "" {
				return nil, fmt.Errorf("%w: task without title in %q", ErrInvalidWorkflow, name)
			}
			due := strings.TrimSpace(t.Due)
			if due != "" {
				if _, err := time.Parse(entities.DateLayout, due); err != nil {
					return nil, fmt.Errorf("%w: task %q due date %q", ErrInvalidWorkflow, title, t.Due)
				}
			}
			tasks = append(tasks, entities.WorkflowTask{
				ID:    u.idOrNew(t.ID),
				Title: title,
				Done:  t.Done,
				Due:   due,
				Note:  t.Note,
			})
		}
		out = append(out, entities.WorkflowCategory{ID: u.idOrNew(cat.ID), Name: name, Tasks: tasks})
	}
	return out, nil
}

func (u *ContractUseCase) idOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return u.newID()
}
