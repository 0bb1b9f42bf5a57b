// file: internals/features/plans/dto/plans_dto.go
package dto

import (
	"strings"

	"planhebdo_backend/internals/helpers/rowfield"
)

type SavePlanRequest struct {
	Week int `json:"week" validate:"required,min=1,max=53"`
	// Data absent et Data vide se distinguent (null refusé, [] accepté) :
	// contrôle fait à la main côté controller.
	Data []rowfield.Row `json:"data"`
}

type SaveNotesRequest struct {
	Week   int     `json:"week" validate:"required,min=1,max=53"`
	Classe string  `json:"classe" validate:"required"`
	Notes  *string `json:"notes" validate:"required"`
}

func (r *SaveNotesRequest) Normalize() {
	r.Classe = strings.TrimSpace(r.Classe)
}

type SaveRowRequest struct {
	Week int          `json:"week" validate:"required,min=1,max=53"`
	Data rowfield.Row `json:"data" validate:"required"`
}
