package email

// Provider sends an email.
type Provider interface {
	Send(email *Email) error
}

// TemplateRenderer renders a named template into an HTML body.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
