// pkg/registry/schema.go
package registry

// Worker categories. Every declared activity belongs to one pipeline stage.
const (
	CategorySurvey    = "survey"
	CategoryBenchmark = "benchmark"
	CategoryReport    = "report"
)

// Categories lists the declared category values in pipeline order.
var Categories = []string{CategorySurvey, CategoryBenchmark, CategoryReport}

// KnownCategory reports whether c is one of the declared categories.
func KnownCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ActivityRegistry is the declared set of workflow activities this fleet
// serves, persisted as configs/activity-registry.json. worker-manager uses
// it at startup to cross-check that every registered worker is declared.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity declares one task worker: its BPMN task type, payload schemas,
// error codes, and operational limits.
type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	Workflows            []string               `json:"workflows"`
	Tags                 []string               `json:"tags"`
}
