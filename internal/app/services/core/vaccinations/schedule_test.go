package vaccinations

import (
	"mommycare-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildScheduledRecords(t *testing.T) {
	birthDate := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	records := buildScheduledRecords("mom-1", birthDate)

	assert.Len(t, records, 11)
	assert.Equal(t, "B.C.G (Bacillus Calmette-Guérin)", records[0].VaccineName)
	assert.Equal(t, birthDate, records[0].DueDate)
	assert.Equal(t, time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC), records[1].DueDate)
	assert.Equal(t, "Adult Tetanus & Diphtheria", records[10].VaccineName)
	assert.Equal(t, birthDate.AddDate(0, 0, 4015), records[10].DueDate)

	for i, record := range records {
		assert.Equal(t, "mom-1", record.MotherID)
		assert.Equal(t, constvars.VaccinationStatusPending, record.Status)
		assert.False(t, record.CreatedAt.IsZero())
		if i > 0 {
			assert.True(t, record.DueDate.After(records[i-1].DueDate), "due dates must increase")
		}
	}
}
