package clinicVisitRequests

import (
	"mommycare-service/internal/app/models"
	"strings"
)

// FilterByType keeps the requests whose type matches requestType, ignoring
// case. An empty requestType returns the list unchanged.
func FilterByType(clinicVisitRequests []models.ClinicVisitRequest, requestType string) []models.ClinicVisitRequest {
	requestType = strings.TrimSpace(requestType)
	if requestType == "" {
		return clinicVisitRequests
	}

	filtered := make([]models.ClinicVisitRequest, 0, len(clinicVisitRequests))
	for _, clinicVisitRequest := range clinicVisitRequests {
		if strings.EqualFold(clinicVisitRequest.RequestType, requestType) {
			filtered = append(filtered, clinicVisitRequest)
		}
	}
	return filtered
}
