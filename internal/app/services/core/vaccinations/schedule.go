package vaccinations

import (
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"time"
)

type scheduleEntry struct {
	VaccineName    string
	RecommendedAge string
	OffsetDays     int
}

// schedule is the national immunization timetable, offsets counted from the
// baby's birth date.
var schedule = []scheduleEntry{
	{"B.C.G (Bacillus Calmette-Guérin)", "At birth", 0},
	{"B.C.G Second Dose", "At birth", 30},
	{"Pentavalent 1 + OPV 1", "2 months completed", 60},
	{"Pentavalent 2 + OPV 2 + IPV", "4 months completed", 120},
	{"Pentavalent 3 + OPV 3", "6 months completed", 180},
	{"MMR 1 (Measles, Mumps, Rubella)", "9 months completed", 270},
	{"Live JE (Japanese Encephalitis)", "12 months completed", 365},
	{"DPT + OPV 4", "18 months completed", 547},
	{"MMR 2 (Measles, Mumps, Rubella)", "3 years completed", 1095},
	{"D.T + OPV 5", "5 years completed", 1825},
	{"Adult Tetanus & Diphtheria", "11 years completed", 4015},
}

// buildScheduledRecords expands the timetable into pending records for a
// mother. birthDate must already be truncated to midnight UTC.
func buildScheduledRecords(motherID string, birthDate time.Time) []models.VaccinationRecord {
	records := make([]models.VaccinationRecord, 0, len(schedule))
	for _, entry := range schedule {
		record := models.VaccinationRecord{
			MotherID:       motherID,
			VaccineName:    entry.VaccineName,
			RecommendedAge: entry.RecommendedAge,
			DueDate:        birthDate.AddDate(0, 0, entry.OffsetDays),
			Status:         constvars.VaccinationStatusPending,
		}
		record.SetCreatedAtUpdatedAt()
		records = append(records, record)
	}
	return records
}
