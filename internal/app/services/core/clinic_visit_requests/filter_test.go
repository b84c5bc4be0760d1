package clinicVisitRequests

import (
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByType(t *testing.T) {
	clinicVisitRequests := []models.ClinicVisitRequest{
		{RequestType: constvars.RequestTypeVaccinations},
		{RequestType: constvars.RequestTypeUltrasound},
		{RequestType: constvars.RequestTypeVaccinations},
	}

	tests := []struct {
		name        string
		requestType string
		expected    int
	}{
		{"Empty Type Keeps All", "", 3},
		{"Exact Match", constvars.RequestTypeVaccinations, 2},
		{"Case Insensitive", "ultrasound", 1},
		{"No Match", constvars.RequestTypeBloodTests, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterByType(clinicVisitRequests, tt.requestType)
			assert.Len(t, result, tt.expected)
		})
	}
}
