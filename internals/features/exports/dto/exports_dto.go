// file: internals/features/exports/dto/exports_dto.go
package dto

import (
	"planhebdo_backend/internals/helpers/rowfield"
)

type GenerateWordRequest struct {
	Week   int            `json:"week" validate:"required,min=1,max=53"`
	Classe string         `json:"classe" validate:"required"`
	Data   []rowfield.Row `json:"data"`
	Notes  string         `json:"notes"`
}

type GenerateWorkbookRequest struct {
	Week int `json:"week" validate:"required,min=1,max=53"`
}

type FullReportRequest struct {
	Classe string `json:"classe" validate:"required"`
}
