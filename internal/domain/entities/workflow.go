package entities

// WorkflowTask is one checklist entry of a contract's production workflow.
// Due is a calendar date in DateLayout, empty when unscheduled.
type WorkflowTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Due   string `json:"due,omitempty"`
	Note  string `json:"note,omitempty"`
}

// WorkflowCategory groups tasks under a stage such as editing or delivery.
type WorkflowCategory struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Tasks []WorkflowTask `json:"tasks"`
}

// CategoryProgress is the completion of one category in whole percent.
type CategoryProgress struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Done       int    `json:"done"`
	Total      int    `json:"total"`
	Percent    int    `json:"percent"`
}

// DeliveryLevel is the traffic-light colour of the delivery progress.
type DeliveryLevel string

const (
	DeliveryLevelRed    DeliveryLevel = "red"
	DeliveryLevelYellow DeliveryLevel = "yellow"
	DeliveryLevelGreen  DeliveryLevel = "green"
)

// WorkflowProgress summarises a workflow. DeliveryPercent tracks the
// product delivery category alone.
type WorkflowProgress struct {
	Categories      []CategoryProgress `json:"categories"`
	DeliveryPercent int                `json:"delivery_percent"`
	DeliveryLevel   DeliveryLevel      `json:"delivery_level"`
}
