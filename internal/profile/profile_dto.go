package profile

import "time"

type UpdateProfileRequest struct {
	Bio         *string           `json:"bio" binding:"omitempty,max=500"`
	Skills      *[]string         `json:"skills" binding:"omitempty,max=30,dive,required,max=64"`
	Preferences map[string]string `json:"preferences" binding:"omitempty,max=30"`
}

func (r UpdateProfileRequest) toUpdate() FieldsUpdate {
	return FieldsUpdate{
		Bio:         r.Bio,
		Skills:      r.Skills,
		Preferences: r.Preferences,
	}
}

type ProfileResponse struct {
	Role    string `json:"role"`
	Profile any    `json:"profile"`
}

type EmployeeProfileResponse struct {
	ID             string            `json:"id"`
	MainEmployeeID string            `json:"main_employee_id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Department     string            `json:"department"`
	Position       string            `json:"position"`
	Bio            string            `json:"bio"`
	Skills         []string          `json:"skills"`
	Preferences    map[string]string `json:"preferences"`
	LastSyncedAt   string            `json:"last_synced_at"`
}

type CustomerProfileResponse struct {
	ID           string            `json:"id"`
	CustomerID   string            `json:"customer_id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Bio          string            `json:"bio"`
	Preferences  map[string]string `json:"preferences"`
	LastSyncedAt string            `json:"last_synced_at"`
}

func mapEmployeeProfile(p *EmployeeProfile) EmployeeProfileResponse {
	return EmployeeProfileResponse{
		ID:             p.ID.Hex(),
		MainEmployeeID: p.MainEmployeeID.Hex(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		Department:     p.Department,
		Position:       p.Position,
		Bio:            p.Bio,
		Skills:         p.Skills,
		Preferences:    p.Preferences,
		LastSyncedAt:   p.LastSyncedAt.Format(time.RFC3339),
	}
}

func mapCustomerProfile(p *CustomerProfile) CustomerProfileResponse {
	return CustomerProfileResponse{
		ID:           p.ID.Hex(),
		CustomerID:   p.CustomerID.Hex(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		Bio:          p.Bio,
		Preferences:  p.Preferences,
		LastSyncedAt: p.LastSyncedAt.Format(time.RFC3339),
	}
}
