package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// Nurture template types. The set is fixed in code; there is no per-lead
// template configuration.
const (
	TemplateLeadMagnetDelivery  = "leadMagnetDelivery"
	TemplateAssessmentReminder  = "assessmentReminder"
	TemplateEducationalContent1 = "educationalContent1"
	TemplateEducationalContent2 = "educationalContent2"
	TemplateSoftPitch           = "softPitch"
)

// TemplateData is what every nurture template may reference.
type TemplateData struct {
	FirstName  string
	LeadMagnet string
}

// templateOrder fixes which template an unknown type falls back to: the
// first one.
var templateOrder = []string{
	TemplateLeadMagnetDelivery,
	TemplateAssessmentReminder,
	TemplateEducationalContent1,
	TemplateEducationalContent2,
	TemplateSoftPitch,
}

var templates = map[string]*template.Template{
	TemplateLeadMagnetDelivery: template.Must(template.New(TemplateLeadMagnetDelivery).Parse(`
<p>Hi {{if .FirstName}}{{.FirstName}}{{else}}there{{end}},</p>
<p>Your <strong>{{if .LeadMagnet}}{{.LeadMagnet}}{{else}}Midlife Reset Guide{{end}}</strong> is attached below. Pour a cup of tea and start with page one.</p>
<p><a href="https://bloomafter40.com/guide">Download your guide</a></p>
<p>— The BloomAfter40 Team</p>`)),

	TemplateAssessmentReminder: template.Must(template.New(TemplateAssessmentReminder).Parse(`
<p>Hi {{if .FirstName}}{{.FirstName}}{{else}}there{{end}},</p>
<p>Two minutes is all the symptom assessment takes, and it tells you exactly which week of the program to lean into first.</p>
<p><a href="https://bloomafter40.com/assessment">Take the assessment</a></p>
<p>— The BloomAfter40 Team</p>`)),

	TemplateEducationalContent1: template.Must(template.New(TemplateEducationalContent1).Parse(`
<p>Hi {{if .FirstName}}{{.FirstName}}{{else}}there{{end}},</p>
<p>If you are waking at 3am for no reason, that is not a character flaw. It is progesterone. Here is what actually helps (hint: it is not trying harder to sleep).</p>
<p><a href="https://bloomafter40.com/blog/sleep-after-40">Read: why your sleep changed</a></p>
<p>— The BloomAfter40 Team</p>`)),

	TemplateEducationalContent2: template.Must(template.New(TemplateEducationalContent2).Parse(`
<p>Hi {{if .FirstName}}{{.FirstName}}{{else}}there{{end}},</p>
<p>Our members' most-kept habit takes ten minutes and requires zero equipment. It is a thought record, and it quietly rewires the 3am spiral.</p>
<p><a href="https://bloomafter40.com/blog/thought-records">See how it works</a></p>
<p>— The BloomAfter40 Team</p>`)),

	TemplateSoftPitch: template.Must(template.New(TemplateSoftPitch).Parse(`
<p>Hi {{if .FirstName}}{{.FirstName}}{{else}}there{{end}},</p>
<p>You have had the guide for almost two weeks. If you are ready for structure instead of willpower, the six week coaching program walks you through sleep, stress, movement and mindset one week at a time.</p>
<p><a href="https://bloomafter40.com/coaching">See the program</a></p>
<p>— The BloomAfter40 Team</p>`)),
}

// Render produces the HTML body for a template type. An unknown type falls
// back to the first template rather than failing the send.
func Render(templateType string, data TemplateData) (string, error) {
	t, ok := templates[templateType]
	if !ok {
		t = templates[templateOrder[0]]
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateType, err)
	}

	return body.String(), nil
}
