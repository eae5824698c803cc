package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPersonalizesGreeting(t *testing.T) {
	body, err := Render(TemplateAssessmentReminder, TemplateData{FirstName: "Ana"})

	assert.NoError(t, err)
	assert.Contains(t, body, "Hi Ana,")
	assert.Contains(t, body, "bloomafter40.com/assessment")
}

func TestRenderFallsBackWithoutName(t *testing.T) {
	body, err := Render(TemplateSoftPitch, TemplateData{})

	assert.NoError(t, err)
	assert.Contains(t, body, "Hi there,")
}

func TestRenderUsesLeadMagnetName(t *testing.T) {
	body, err := Render(TemplateLeadMagnetDelivery, TemplateData{LeadMagnet: "Sleep Rescue Checklist"})

	assert.NoError(t, err)
	assert.Contains(t, body, "Sleep Rescue Checklist")
}

func TestRenderUnknownTypeFallsBackToFirst(t *testing.T) {
	body, err := Render("somethingNew", TemplateData{FirstName: "Ana"})

	assert.NoError(t, err)
	// Falls back to the lead magnet delivery body instead of erroring.
	assert.Contains(t, body, "Midlife Reset Guide")
}

func TestRenderEscapesHTMLInput(t *testing.T) {
	body, err := Render(TemplateLeadMagnetDelivery, TemplateData{FirstName: `<script>alert(1)</script>`})

	assert.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestEveryTemplateTypeRenders(t *testing.T) {
	for _, templateType := range templateOrder {
		body, err := Render(templateType, TemplateData{FirstName: "Ana"})
		assert.NoError(t, err, templateType)
		assert.Contains(t, body, "BloomAfter40 Team", templateType)
	}
}
