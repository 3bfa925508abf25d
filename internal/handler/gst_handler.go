package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"designdesk/internal/gst"
)

// GSTHandler exposes the tax calculator and format validators directly, so
// the frontend can preview figures before an invoice is saved.
type GSTHandler struct {
	calculator *gst.Calculator
	validator  *gst.Validator
}

// NewGSTHandler creates a new GSTHandler.
func NewGSTHandler(calculator *gst.Calculator, validator *gst.Validator) *GSTHandler {
	return &GSTHandler{calculator: calculator, validator: validator}
}

// CalcLineInput is one line in a calculation preview request.
type CalcLineInput struct {
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0"`
	TaxRate     float64 `json:"tax_rate"`
	DiscountPct float64 `json:"discount_pct" binding:"gte=0,lte=100"`
}

// CalculateInput is the request body for a calculation preview.
type CalculateInput struct {
	SellerStateCode string          `json:"seller_state_code" binding:"required"`
	BuyerStateCode  string          `json:"buyer_state_code" binding:"required"`
	Items           []CalcLineInput `json:"items" binding:"required,min=1,dive"`
}

// CalculateOutput is the calculation preview response.
type CalculateOutput struct {
	Lines         []gst.LineItemResult `json:"lines"`
	Totals        gst.DocumentTotals   `json:"totals"`
	AmountInWords string               `json:"amount_in_words"`
}

// ReverseInput is the request body for a tax-inclusive reverse split.
type ReverseInput struct {
	InclusiveAmount float64 `json:"inclusive_amount" binding:"required,gt=0"`
	TaxRate         float64 `json:"tax_rate"`
	SellerStateCode string  `json:"seller_state_code" binding:"required"`
	BuyerStateCode  string  `json:"buyer_state_code" binding:"required"`
}

// Calculate handles POST /api/v1/gst/calculate
// @Summary      Preview tax calculation
// @Description  Computes per-line splits and document totals without persisting anything
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        input body CalculateInput true "Lines"
// @Success      200 {object} APIResponse{data=CalculateOutput}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /gst/calculate [post]
func (h *GSTHandler) Calculate(c *gin.Context) {
	var input CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	lines := make([]gst.LineItemResult, 0, len(input.Items))
	for _, item := range input.Items {
		result, err := h.calculator.LineItem(item.Quantity, item.UnitPrice, item.TaxRate,
			input.SellerStateCode, input.BuyerStateCode, item.DiscountPct)
		if err != nil {
			HandleError(c, err)
			return
		}
		lines = append(lines, result)
	}

	totals := h.calculator.AggregateDocument(lines)
	RespondOK(c, CalculateOutput{
		Lines:         lines,
		Totals:        totals,
		AmountInWords: gst.AmountInWords(totals.GrandTotal),
	})
}

// Reverse handles POST /api/v1/gst/reverse
// @Summary      Reverse split a tax-inclusive amount
// @Description  Derives the taxable base and tax components from a tax-inclusive total
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        input body ReverseInput true "Inclusive amount"
// @Success      200 {object} APIResponse{data=gst.TaxSplit}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /gst/reverse [post]
func (h *GSTHandler) Reverse(c *gin.Context) {
	var input ReverseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	split, err := h.calculator.ReverseSplit(input.InclusiveAmount, input.TaxRate,
		input.SellerStateCode, input.BuyerStateCode)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, split)
}

// Validate handles GET /api/v1/gst/validate/:kind?value=...
// @Summary      Validate an identifier
// @Description  Validates a GSTIN, PAN, HSN, SAC, state code, invoice number or IRN
// @Tags         gst
// @Produce      json
// @Param        kind path string true "Identifier kind" Enums(gstin, pan, hsn, sac, state-code, invoice-number, irn)
// @Param        value query string true "Value to validate"
// @Success      200 {object} APIResponse{data=gst.ValidationResult}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /gst/validate/{kind} [get]
func (h *GSTHandler) Validate(c *gin.Context) {
	value := c.Query("value")
	if value == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "value query parameter is required")
		return
	}

	switch c.Param("kind") {
	case "gstin":
		RespondOK(c, h.validator.ValidateGSTIN(value))
	case "pan":
		RespondOK(c, h.validator.ValidatePAN(value))
	case "hsn":
		RespondOK(c, h.validator.ValidateHSN(value))
	case "sac":
		RespondOK(c, h.validator.ValidateSAC(value))
	case "state-code":
		RespondOK(c, h.validator.ValidateStateCode(value))
	case "invoice-number":
		RespondOK(c, h.validator.ValidateInvoiceNumber(value))
	case "irn":
		RespondOK(c, h.validator.ValidateIRN(value))
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			"unknown kind; allowed: gstin, pan, hsn, sac, state-code, invoice-number, irn")
	}
}
