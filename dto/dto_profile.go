package dto

// UpsertProfileRequest carries skills as a comma-separated string on the
// wire; the service splits and trims it before persisting.
type UpsertProfileRequest struct {
	Status   string `json:"status" validate:"required"`
	Skills   string `json:"skills" validate:"required"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`
}
