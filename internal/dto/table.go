package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
)

type TableRequest struct {
	Expression string   `json:"expression" example:"A AND !B"`
	Order      []string `json:"order,omitempty" example:"B,A"`
	Glyphs     string   `json:"glyphs,omitempty" example:"01"`
	Classify   bool     `json:"classify,omitempty"`
}

func (r *TableRequest) Validate() error {
	return validateExpression(r.Expression, r.Order)
}

type TableResponse struct {
	ID             uuid.UUID               `json:"id"`
	Expression     string                  `json:"expression"`
	Variables      []string                `json:"variables"`
	Postfix        string                  `json:"postfix" example:"A B NOT AND"`
	Rows           []Row                   `json:"rows"`
	Classification *ClassificationResponse `json:"classification,omitempty"`
}

type Row struct {
	// Bits holds one glyph per variable in variable order.
	Bits  string `json:"bits" example:"10"`
	Value string `json:"value" example:"1"`
}

type ClassifyRequest struct {
	Expression string   `json:"expression" example:"A OR !A"`
	Order      []string `json:"order,omitempty"`
	Glyphs     string   `json:"glyphs,omitempty" example:"01"`
}

func (r *ClassifyRequest) Validate() error {
	return validateExpression(r.Expression, r.Order)
}

type ClassificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Variables []string  `json:"variables,omitempty"`
	Class     string    `json:"class" example:"contingent"`
	// Satisfying and Falsifying are witness assignments, one glyph per variable.
	Satisfying string `json:"satisfying,omitempty" example:"10"`
	Falsifying string `json:"falsifying,omitempty" example:"01"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty" example:"unbalanced_parentheses"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func validateExpression(expr string, order []string) error {
	if strings.TrimSpace(expr) == "" {
		return apperr.NewValidation("expression is required")
	}
	if len(order) > symbol.MaxVariables {
		return apperr.Newf(apperr.Validation, "order lists %d variables, maximum is %d", len(order), symbol.MaxVariables)
	}
	for _, name := range order {
		if name == "" || strings.ContainsAny(name, " \t\r\n/") {
			return apperr.Newf(apperr.Validation, "invalid variable name %q in order", name)
		}
	}
	return nil
}
