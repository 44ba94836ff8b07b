package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const inquiryTemplateName = "inquiry"

const inquiryTemplate = `<p>Hello {{.RealtorName}},</p>
<p>You have a new inquiry about <strong>{{.HomeAddress}}, {{.HomeCity}}</strong>.</p>
<blockquote>{{.Message}}</blockquote>
<p>From: {{.BuyerName}}{{if .BuyerEmail}} &lt;{{.BuyerEmail}}&gt;{{end}}{{if .BuyerPhone}}, {{.BuyerPhone}}{{end}}</p>`

// TemplateManager is a concurrency-safe set of named html templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplateManager returns a manager preloaded with the built-in
// templates.
func NewDefaultTemplateManager() *TemplateManager {
	tm := NewTemplateManager()
	if err := tm.AddTemplate(inquiryTemplateName, inquiryTemplate); err != nil {
		panic(err)
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
