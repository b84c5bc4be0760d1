package requests

type AssignMidwife struct {
	MidwifeID string `json:"midwifeId" validate:"required"`
	MomID     string `json:"momId" validate:"required"`
	Notes     string `json:"notes" validate:"max=500"`
}
