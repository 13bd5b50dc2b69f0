package customers

import "time"

// Customer is the stored record. Optional fields are nil when absent and
// encode as JSON null.
type Customer struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"telefone"`
	BirthDate *time.Time `json:"birth_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Input is the create/update payload as sent by clients.
type Input struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	BirthDate string `json:"birth_date"`
}
