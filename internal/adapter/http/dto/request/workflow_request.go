package request

import "estudio_admin/internal/domain/entities"

type WorkflowTaskRequest struct {
	ID    string `json:"id"`
	Title string `json:"title" binding:"required"`
	Done  bool   `json:"done"`
	Due   string `json:"due"`
	Note  string `json:"note"`
}

type WorkflowCategoryRequest struct {
	ID    string                `json:"id"`
	Name  string                `json:"name" binding:"required"`
	Tasks []WorkflowTaskRequest `json:"tasks" binding:"dive"`
}

// ContractWorkflowRequest replaces the whole checklist. An empty list resets
// the contract to the default checklist.
type ContractWorkflowRequest struct {
	Categories []WorkflowCategoryRequest `json:"categories" binding:"dive"`
}

func (r ContractWorkflowRequest) ToEntities() []entities.WorkflowCategory {
	out := make([]entities.WorkflowCategory, 0, len(r.Categories))
	for _, cat := range r.Categories {
		tasks := make([]entities.WorkflowTask, 0, len(cat.Tasks))
		for _, t := range cat.Tasks {
			tasks = append(tasks, entities.WorkflowTask{ID: t.ID, Title: t.Title, Done: t.Done, Due: t.Due, Note: t.Note})
		}
		out = append(out, entities.WorkflowCategory{ID: cat.ID, Name: cat.Name, Tasks: tasks})
	}
	return out
}
