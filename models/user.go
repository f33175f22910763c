package models

import (
	"concurseiro/tools"
	"time"
)

/************************************************
/**** MARK: PLANOS ****/
/************************************************/
const PLANO_FREE = "free"
const PLANO_BASICO = "basic"
const PLANO_PREMIUM = "premium"

/************************************************
/**** MARK: USER STATUS ****/
/************************************************/
const USER_STATUS_AVAILABLE = 0
const USER_STATUS_BLOCKED = 2

// User representa um usuario (concurseiro) no sistema.
// O plano define os limites de cadernos/pastas/questões (ver cadernos.LimitesDoPlano).
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Email     string     `gorm:"not null;unique" json:"email" form:"email"`
	Password  string     `gorm:"not null" json:"password" form:"password"`
	Plano     string     `gorm:"not null;default:'free'" json:"plano" form:"plano"`
	Status    int        `gorm:"default:0" json:"status" form:"status"`
	Admin     bool       `gorm:"not null; default: false" json:"admin" form:"admin"`
	CreatedAt *time.Time `json:"created_at" form:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" form:"updated_at"`
}

func (user User) MissingFields() string {
	if user.Name == "" {
		return "name"
	} else if user.Email == "" {
		return "email"
	} else if user.Password == "" {
		return "password"
	} else if tools.CheckPassword(user.Password) != "" {
		return tools.CheckPassword(user.Password)
	}
	return ""
}

// IsPlanoValido valida o identificador de plano recebido em cadastros/upgrades.
func IsPlanoValido(plano string) bool {
	switch plano {
	case PLANO_FREE, PLANO_BASICO, PLANO_PREMIUM:
		return true
	}
	return false
}
