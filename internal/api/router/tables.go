package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/dto"
	"github.com/DjordjeVuckovic/ttgen/internal/eval"
	"github.com/DjordjeVuckovic/ttgen/internal/sat"
	"github.com/DjordjeVuckovic/ttgen/internal/table"
	"github.com/DjordjeVuckovic/ttgen/internal/ttgen"
)

type TablesRouter struct {
	e       *echo.Echo
	maxVars int
}

func NewTablesRouter(e *echo.Echo, maxVars int) *TablesRouter {
	return &TablesRouter{
		e:       e,
		maxVars: maxVars,
	}
}

func (r *TablesRouter) Bind() {
	r.e.POST("/tables", r.tableHandler)
	r.e.POST("/classify", r.classifyHandler)
}

// tableHandler godoc
// @Summary Generate a truth table
// @Description Lists every assignment from all-true to all-false with the value of the expression.
// @Tags tables
// @Accept json
// @Produce json
// @Param request body dto.TableRequest true "Expression"
// @Success 200 {object} dto.TableResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tables [post]
func (r *TablesRouter) tableHandler(c echo.Context) error {
	var req dto.TableRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.Validation, "invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	g, err := table.ParseGlyphs(req.Glyphs)
	if err != nil {
		return apperr.Wrap(apperr.Validation, "invalid glyphs", err)
	}

	tbl, err := compile(req.Expression, req.Order)
	if err != nil {
		return err
	}
	if n := len(tbl.Variables); n > r.maxVars {
		return apperr.Newf(apperr.TooManyVariables, "expression uses %d variables, tables are limited to %d", n, r.maxVars)
	}

	doc, err := tbl.Document(req.Expression, g, r.maxVars)
	if err != nil {
		return err
	}

	resp := dto.TableResponse{
		ID:         uuid.New(),
		Expression: doc.Expression,
		Variables:  doc.Variables,
		Postfix:    doc.Postfix,
		Rows:       make([]dto.Row, len(doc.Rows)),
	}
	for i, row := range doc.Rows {
		resp.Rows[i] = dto.Row{Bits: row.Bits, Value: row.Value}
	}

	if req.Classify {
		cl, err := classify(tbl, g)
		if err != nil {
			return err
		}
		cl.ID = resp.ID
		resp.Classification = cl
	}

	slog.Debug("Table generated", "id", resp.ID, "variables", len(resp.Variables), "rows", len(resp.Rows))
	return c.JSON(http.StatusOK, resp)
}

// classifyHandler godoc
// @Summary Classify an expression
// @Description Reports tautology, contradiction or contingent with witness assignments, for up to 64 variables.
// @Tags tables
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Expression"
// @Success 200 {object} dto.ClassificationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /classify [post]
func (r *TablesRouter) classifyHandler(c echo.Context) error {
	var req dto.ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.Validation, "invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	g, err := table.ParseGlyphs(req.Glyphs)
	if err != nil {
		return apperr.Wrap(apperr.Validation, "invalid glyphs", err)
	}

	tbl, err := compile(req.Expression, req.Order)
	if err != nil {
		return err
	}
	cl, err := classify(tbl, g)
	if err != nil {
		return err
	}
	cl.ID = uuid.New()
	cl.Variables = tbl.Variables
	return c.JSON(http.StatusOK, cl)
}

// compile runs the order as a declaration line ahead of the expression.
func compile(expression string, order []string) (*table.Table, error) {
	session := ttgen.NewSession()
	if len(order) > 0 {
		if _, err := session.Process("/ " + strings.Join(order, " ")); err != nil {
			return nil, err
		}
	}
	tbl, err := session.Process(expression)
	if err != nil {
		return nil, err
	}
	if tbl == nil {
		return nil, apperr.NewValidation("expression must not be a declaration line")
	}
	return tbl, nil
}

func classify(tbl *table.Table, g table.Glyphs) (*dto.ClassificationResponse, error) {
	cl, err := sat.Classify(tbl.Program, len(tbl.Variables))
	if err != nil {
		return nil, err
	}
	return &dto.ClassificationResponse{
		Class:      cl.Class.String(),
		Satisfying: witness(cl.Satisfying, len(tbl.Variables), g),
		Falsifying: witness(cl.Falsifying, len(tbl.Variables), g),
	}, nil
}

func witness(a *eval.Assignment, n int, g table.Glyphs) string {
	if a == nil {
		return ""
	}
	bits := make([]byte, n)
	for id := range bits {
		bits[id] = g.Of(a.Bit(id))
	}
	return string(bits)
}
