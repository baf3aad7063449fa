package services

import (
	"strings"
	"unicode"

	"estudio_admin/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DeliveryCategoryName is used when a workflow has no delivery category.
	DeliveryCategoryName = "Entrega de produtos"
	deliveryKeyword      = "entrega"
	deliveryTaskPrefix   = "Entregar "

	deliveryGreenFrom  = 67
	deliveryYellowFrom = 34
)

var defaultWorkflowTemplate = []struct {
	name  string
	tasks []string
}{
	{"Pré-produção", []string{"Confirmar detalhes com o cliente", "Visitar o local do evento"}},
	{"Evento", []string{"Cobertura do evento", "Backup dos arquivos"}},
	{"Pós-produção", []string{"Seleção de fotos", "Edição", "Envio da galeria"}},
}

// DefaultWorkflow is the checklist a contract starts with. It does not yet
// carry the per-item delivery tasks; see WithDeliveryTasks.
func DefaultWorkflow(newID func() string) []entities.WorkflowCategory {
	out := make([]entities.WorkflowCategory, 0, len(defaultWorkflowTemplate))
	for _, cat := range defaultWorkflowTemplate {
		tasks := make([]entities.WorkflowTask, 0, len(cat.tasks))
		for _, title := range cat.tasks {
			tasks = append(tasks, entities.WorkflowTask{ID: newID(), Title: title})
		}
		out = append(out, entities.WorkflowCategory{ID: newID(), Name: cat.name, Tasks: tasks})
	}
	return out
}

// WithDeliveryTasks returns a copy of wf where the first category whose name
// mentions delivery (accents and case ignored) holds one "Entregar <item>"
// task per store item. The category is appended when missing and tasks that
// already exist are kept as they are.
func WithDeliveryTasks(wf []entities.WorkflowCategory, items []entities.StoreItem, newID func() string) []entities.WorkflowCategory {
	out := cloneWorkflow(wf)
	idx := DeliveryCategoryIndex(out)
	if idx < 0 {
		out = append(out, entities.WorkflowCategory{ID: newID(), Name: DeliveryCategoryName, Tasks: []entities.WorkflowTask{}})
		idx = len(out) - 1
	}

	cat := &out[idx]
	for _, it := range items {
		title := deliveryTaskPrefix + it.Name
		if hasTask(cat.Tasks, title) {
			continue
		}
		cat.Tasks = append(cat.Tasks, entities.WorkflowTask{ID: newID(), Title: title})
	}
	return out
}

// ResolveWorkflow is the workflow shown for a contract: the stored one, or
// the default when none was saved, plus delivery tasks.
func ResolveWorkflow(c entities.Contract, newID func() string) []entities.WorkflowCategory {
	wf := c.Workflow
	if len(wf) == 0 {
		wf = DefaultWorkflow(newID)
	}
	return WithDeliveryTasks(wf, c.StoreItems, newID)
}

// DeliveryCategoryIndex returns the index of the delivery category or -1.
func DeliveryCategoryIndex(wf []entities.WorkflowCategory) int {
	for i, cat := range wf {
		if strings.Contains(normalizeTitle(cat.Name), deliveryKeyword) {
			return i
		}
	}
	return -1
}

// ComputeWorkflowProgress rounds half up like the admin UI. An empty category
// counts as 0%.
func ComputeWorkflowProgress(wf []entities.WorkflowCategory) entities.WorkflowProgress {
	p := entities.WorkflowProgress{Categories: make([]entities.CategoryProgress, 0, len(wf))}
	for _, cat := range wf {
		done := doneTasks(cat.Tasks)
		p.Categories = append(p.Categories, entities.CategoryProgress{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Done:       done,
			Total:      len(cat.Tasks),
			Percent:    percent(done, len(cat.Tasks)),
		})
	}
	if idx := DeliveryCategoryIndex(wf); idx >= 0 {
		p.DeliveryPercent = p.Categories[idx].Percent
	}
	p.DeliveryLevel = deliveryLevel(p.DeliveryPercent)
	return p
}

func deliveryLevel(pct int) entities.DeliveryLevel {
	switch {
	case pct >= deliveryGreenFrom:
		return entities.DeliveryLevelGreen
	case pct >= deliveryYellowFrom:
		return entities.DeliveryLevelYellow
	default:
		return entities.DeliveryLevelRed
	}
}

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}

func doneTasks(tasks []entities.WorkflowTask) int {
	n := 0
	for _, t := range tasks {
		if t.Done {
			n++
		}
	}
	return n
}

func hasTask(tasks []entities.WorkflowTask, title string) bool {
	want := normalizeTitle(title)
	for _, t := range tasks {
		if normalizeTitle(t.Title) == want {
			return true
		}
	}
	return false
}

func cloneWorkflow(wf []entities.WorkflowCategory) []entities.WorkflowCategory {
	out := make([]entities.WorkflowCategory, len(wf))
	for i, cat := range wf {
		out[i] = cat
		out[i].Tasks = append([]entities.WorkflowTask(nil), cat.Tasks...)
	}
	return out
}

// normalizeTitle drops diacritics, lowercases and trims.
func normalizeTitle(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
