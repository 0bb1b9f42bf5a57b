// file: internals/features/ai/dto/ai_dto.go
package dto

import "planhebdo_backend/internals/helpers/rowfield"

type GenerateAIPlanRequest struct {
	Week    int          `json:"week" validate:"required,min=1,max=53"`
	RowData rowfield.Row `json:"rowData" validate:"required"`
}
