package converter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/you-humble/techrepair/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = map[model.RepairEventType]*template.Template{
	model.RepairEventCreated:       mustParse("templates/repair_created.tmpl"),
	model.RepairEventStatusChanged: mustParse("templates/repair_status_changed.tmpl"),
	model.RepairEventDeleted:       mustParse("templates/repair_deleted.tmpl"),
}

var statusLabels = map[model.RepairStatus]string{
	model.StatusNew:        "новая",
	model.StatusInProgress: "в работе",
	model.StatusCompleted:  "выполнена",
	model.StatusCancelled:  "отменена",
}

var urgencyLabels = map[model.Urgency]string{
	model.UrgencyLow:    "низкая",
	model.UrgencyMedium: "средняя",
	model.UrgencyHigh:   "🔥 высокая",
}

const unnamedCustomer = "без имени"

func mustParse(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, name))
}

// BuildRepairEvent renders event as Telegram HTML. ok is false for event
// types that have no message.
func BuildRepairEvent(event model.RepairEvent) (text string, ok bool, err error) {
	tmpl, ok := templates[event.Type]
	if !ok {
		return "", false, nil
	}

	n := model.RepairNotification{
		RepairID:        event.RepairID,
		Customer:        event.Customer,
		Phone:           event.Phone,
		Device:          event.Device,
		ProblemType:     event.ProblemType,
		UrgencyLabel:    label(urgencyLabels, event.Urgency),
		StatusLabel:     label(statusLabels, event.Status),
		PrevStatusLabel: label(statusLabels, event.PrevStatus),
	}
	if n.Customer == "" {
		n.Customer = unnamedCustomer
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n); err != nil {
		return "", false, fmt.Errorf("render %s notification: %w", event.Type, err)
	}

	return buf.String(), true, nil
}

// label falls back to the raw value so unknown statuses still show up.
func label[K ~string](labels map[K]string, v K) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return string(v)
}
