package response

import (
	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/usecase"
)

type WorkflowTaskResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Due   string `json:"due,omitempty"`
	Note  string `json:"note,omitempty"`
}

type WorkflowCategoryResponse struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Tasks   []WorkflowTaskResponse `json:"tasks"`
	Done    int                    `json:"done"`
	Total   int                    `json:"total"`
	Percent int                    `json:"percent"`
}

type WorkflowProgressResponse struct {
	Percents        []int  `json:"percents"`
	DeliveryPercent int    `json:"delivery_percent"`
	DeliveryLevel   string `json:"delivery_level"`
}

type ContractWorkflowResponse struct {
	ContractID string                     `json:"contract_id"`
	Categories []WorkflowCategoryResponse `json:"categories"`
	Progress   WorkflowProgressResponse   `json:"progress"`
}

func FromWorkflowProgress(p entities.WorkflowProgress) WorkflowProgressResponse {
	percents := make([]int, 0, len(p.Categories))
	for _, c := range p.Categories {
		percents = append(percents, c.Percent)
	}
	return WorkflowProgressResponse{
		Percents:        percents,
		DeliveryPercent: p.DeliveryPercent,
		DeliveryLevel:   string(p.DeliveryLevel),
	}
}

func FromContractWorkflow(w usecase.ContractWorkflow) ContractWorkflowResponse {
	cats := make([]WorkflowCategoryResponse, 0, len(w.Categories))
	for i, cat := range w.Categories {
		tasks := make([]WorkflowTaskResponse, 0, len(cat.Tasks))
		for _, t := range cat.Tasks {
			tasks = append(tasks, WorkflowTaskResponse{ID: t.ID, Title: t.Title, Done: t.Done, Due: t.Due, Note: t.Note})
		}
		out := WorkflowCategoryResponse{ID: cat.ID, Name: cat.Name, Tasks: tasks}
		if i < len(w.Progress.Categories) {
			p := w.Progress.Categories[i]
			out.Done, out.Total, out.Percent = p.Done, p.Total, p.Percent
		}
		cats = append(cats, out)
	}
	return ContractWorkflowResponse{
		ContractID: w.ContractID,
		Categories: cats,
		Progress:   FromWorkflowProgress(w.Progress),
	}
}
