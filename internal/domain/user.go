package domain

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCashier Role = "CASHIER"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Shift string `json:"shift,omitempty"`
}

type NewUser struct {
	Name  string `json:"name" validate:"required"`
	Shift string `json:"shift" validate:"required"`
	PIN   string `json:"pin" validate:"required,len=6,numeric"`
}

type UpdateUser struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Shift *string `json:"shift,omitempty" validate:"omitempty,min=1"`
}

type SetPin struct {
	PIN        string `json:"pin" validate:"required,len=6,numeric"`
	ConfirmPin string `json:"-" validate:"required,eqfield=PIN"`
}
