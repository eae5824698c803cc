package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/queue"
)

type fakeScheduleRepo struct {
	due        []*entity.ScheduledEmail
	claimedAt  []time.Time
	failedIDs  []string
	claimErr   error
	markFailed error
}

func (r *fakeScheduleRepo) Schedule(_ context.Context, email *entity.ScheduledEmail) error {
	return nil
}

func (r *fakeScheduleRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]*entity.ScheduledEmail, error) {
	r.claimedAt = append(r.claimedAt, now)
	if r.claimErr != nil {
		return nil, r.claimErr
	}
	if len(r.due) > limit {
		return r.due[:limit], nil
	}
	return r.due, nil
}

func (r *fakeScheduleRepo) MarkSent(_ context.Context, id string, at time.Time) error { return nil }
func (r *fakeScheduleRepo) MarkSkipped(_ context.Context, id string) error            { return nil }
func (r *fakeScheduleRepo) DeleteByLeadID(_ context.Context, leadID string) error     { return nil }

func (r *fakeScheduleRepo) MarkFailed(_ context.Context, id string) error {
	r.failedIDs = append(r.failedIDs, id)
	return r.markFailed
}

type fakeProducer struct {
	published []queue.DripPayload
	failFor   map[string]error
}

func (p *fakeProducer) PublishDrip(_ context.Context, payload queue.DripPayload) error {
	if err, ok := p.failFor[payload.ScheduledEmailID]; ok {
		return err
	}
	p.published = append(p.published, payload)
	return nil
}

func dueRow(id, leadID, templateType, subject string) *entity.ScheduledEmail {
	return &entity.ScheduledEmail{
		ID:           id,
		LeadID:       leadID,
		TemplateType: templateType,
		Subject:      subject,
	}
}

func TestTickPublishesClaimedRows(t *testing.T) {
	repo := &fakeScheduleRepo{due: []*entity.ScheduledEmail{
		dueRow("se-1", "lead-1", "leadMagnetDelivery", "Your Midlife Reset Guide is here 🌸"),
		dueRow("se-2", "lead-2", "assessmentReminder", "Two minutes that tell you where to start"),
	}}
	producer := &fakeProducer{}

	fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	scheduler := NewDripScheduler(repo, producer, func() time.Time { return fixed })

	scheduler.Tick(context.Background())

	assert.Equal(t, []time.Time{fixed}, repo.claimedAt)
	assert.Len(t, producer.published, 2)
	assert.Equal(t, "se-1", producer.published[0].ScheduledEmailID)
	assert.Equal(t, "lead-1", producer.published[0].LeadID)
	assert.Equal(t, "leadMagnetDelivery", producer.published[0].TemplateType)
	assert.Empty(t, repo.failedIDs)
}

func TestTickMarksFailedWhenPublishFails(t *testing.T) {
	repo := &fakeScheduleRepo{due: []*entity.ScheduledEmail{
		dueRow("se-1", "lead-1", "leadMagnetDelivery", "subject one"),
		dueRow("se-2", "lead-2", "softPitch", "subject two"),
	}}
	producer := &fakeProducer{failFor: map[string]error{
		"se-1": errors.New("broker unreachable"),
	}}

	scheduler := NewDripScheduler(repo, producer, nil)
	scheduler.Tick(context.Background())

	// The broken row is parked as failed, the healthy one still goes out.
	assert.Equal(t, []string{"se-1"}, repo.failedIDs)
	assert.Len(t, producer.published, 1)
	assert.Equal(t, "se-2", producer.published[0].ScheduledEmailID)
}

func TestTickSurvivesClaimError(t *testing.T) {
	repo := &fakeScheduleRepo{claimErr: errors.New("connection reset")}
	producer := &fakeProducer{}

	scheduler := NewDripScheduler(repo, producer, nil)
	scheduler.Tick(context.Background())

	assert.Empty(t, producer.published)
	assert.Empty(t, repo.failedIDs)
}

func TestTickNothingDueIsQuiet(t *testing.T) {
	repo := &fakeScheduleRepo{}
	producer := &fakeProducer{}

	scheduler := NewDripScheduler(repo, producer, nil)
	scheduler.Tick(context.Background())

	assert.Empty(t, producer.published)
}
