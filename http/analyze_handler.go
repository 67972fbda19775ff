package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/gommon/log"

	"debt-projection/domain"
)

// DebtAnalysisService is what the handler needs from the service layer.
type DebtAnalysisService interface {
	IsReady() bool
	AnalyzeDebt(customerID string, productType domain.ProductType) (domain.AnalysisResult, error)
}

type AnalyzeHandler struct {
	service DebtAnalysisService
}

func NewAnalyzeHandler(service DebtAnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{service: service}
}

func (h *AnalyzeHandler) AnalyzeDebt(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusBadRequest, ErrorTypeValidation,
			"Content-Type must be application/json", nil)
		return
	}

	var req domain.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("[AnalyzeHandler] Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, ErrorTypeValidation, "Invalid request body", nil)
		return
	}

	productType, validationErrors := validateAnalyzeRequest(req)
	if len(validationErrors) > 0 {
		writeError(w, http.StatusBadRequest, ErrorTypeValidation, "Invalid request data",
			ValidationDetails{ValidationErrors: validationErrors})
		return
	}

	if !h.service.IsReady() {
		writeError(w, http.StatusServiceUnavailable, ErrorTypeServiceNotReady,
			"Service not initialized. Data not loaded from storage.", nil)
		return
	}

	log.Infof("[AnalyzeHandler] Analyzing debt for customer_id=%s, product_type=%s", req.CustomerID, productType)

	result, err := h.service.AnalyzeDebt(req.CustomerID, productType)
	if err != nil {
		var notFound *domain.NotFoundError
		switch {
		case errors.As(err, &notFound):
			writeError(w, http.StatusNotFound, ErrorTypeAnalysis, notFound.Message, nil)
		case errors.Is(err, domain.ErrServiceNotReady):
			writeError(w, http.StatusServiceUnavailable, ErrorTypeServiceNotReady, err.Error(), nil)
		default:
			log.Errorf("[AnalyzeHandler] Unexpected error in analyze endpoint: %v", err)
			writeError(w, http.StatusInternalServerError, ErrorTypeInternal, "An internal error occurred", nil)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func validateAnalyzeRequest(req domain.AnalyzeRequest) (domain.ProductType, []string) {
	var errs []string
	if req.CustomerID == "" {
		errs = append(errs, "customer_id is required")
	}

	var productType domain.ProductType
	if req.ProductType == "" {
		errs = append(errs, "product_type is required")
	} else {
		pt, err := domain.ParseProductType(req.ProductType)
		if err != nil {
			errs = append(errs, err.Error())
		}
		productType = pt
	}
	return productType, errs
}
