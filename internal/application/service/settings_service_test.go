package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andikurnia/siperjaka/internal/domain/entity"
)

func TestSettingsGet_DefaultsBeforeFirstSave(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, nopLogger{})

	set, err := svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), set)
}

func TestSettingsUpdate_RoundTrip(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, nopLogger{})
	ctx := context.Background()

	set := entity.DefaultSettings()
	set.SKOfficial = "SEKRETARIS DAERAH KABUPATEN DEMAK"
	assert.NoError(t, svc.Update(ctx, adminActor, set))

	got, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "SEKRETARIS DAERAH KABUPATEN DEMAK", got.SKOfficial)
}

func TestSettingsUpdate_RequiresAdmin(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, nopLogger{})

	err := svc.Update(context.Background(), verifierActor, entity.DefaultSettings())

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSettingsUpdate_RejectsMissingRequiredFields(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, nopLogger{})

	set := entity.DefaultSettings()
	set.OfficialName = ""
	err := svc.Update(context.Background(), adminActor, set)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
