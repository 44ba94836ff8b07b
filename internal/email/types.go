package email

// Email is a single outgoing HTML message.
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}

// TemplateData is passed to a template when rendering.
type TemplateData map[string]interface{}
