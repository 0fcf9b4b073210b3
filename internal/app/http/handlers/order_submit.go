package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/zarobax/ams-order-form/internal/domain/order"
	pdfgen "github.com/zarobax/ams-order-form/internal/domain/order/pdf/gofpdf"
	"github.com/zarobax/ams-order-form/internal/domain/quote"
)

// rawInput is a form-field value: the browser sends whatever the user typed.
// Accepts a JSON string or a bare number.
type rawInput string

func (v *rawInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = rawInput(s)
		return nil
	}
	*v = rawInput(strings.TrimSpace(string(data)))
	return nil
}

type submitOrderRequest struct {
	Customer string `json:"customer"`
	ShipTo   string `json:"ship_to"`
	Items    []struct {
		Code  string   `json:"code"`
		Qty   rawInput `json:"qty"`
		Price rawInput `json:"price"`
	} `json:"items"`
	NewCustomer *order.Account `json:"new_customer"`
}

type submitOrderResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

// buildOrder validates the submission and assembles the order without
// touching the registry. Shared by the email and PDF submit paths.
func (h *Handlers) buildOrder(r *http.Request) (order.Order, []quote.Line, error) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return order.Order{}, nil, quote.NewValidationError("bad request")
	}

	customerName := strings.TrimSpace(req.Customer)
	if customerName == "" {
		return order.Order{}, nil, quote.ErrEnterCustomerName
	}

	if req.NewCustomer != nil {
		if err := req.NewCustomer.Validate(); err != nil {
			return order.Order{}, nil, err
		}
	}

	var (
		orderLines []order.Line
		quoteLines []quote.Line
	)
	for _, it := range req.Items {
		item, ok := h.byCode[it.Code]
		if !ok {
			return order.Order{}, nil, quote.NewValidationError(fmt.Sprintf("unknown item code: %s", it.Code))
		}
		line, qty, err := quote.BuildLine(item, string(it.Qty), string(it.Price))
		if err != nil {
			return order.Order{}, nil, err
		}
		orderLines = append(orderLines, order.Line{Qty: qty, Item: line})
		quoteLines = append(quoteLines, line)
	}
	if len(orderLines) == 0 {
		return order.Order{}, nil, quote.ErrSelectItems
	}

	o := order.Order{
		CustomerName: customerName,
		ShipTo:       req.ShipTo,
		Lines:        orderLines,
		Account:      req.NewCustomer,
	}
	return o, quoteLines, nil
}

// SubmitOrder commits the order: the selected lines become the customer's
// master quote (full replace) and the composed warehouse email is returned
// for the caller's mail mechanism.
func (h *Handlers) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	o, lines, err := h.buildOrder(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.Store.SubmitOrder(r.Context(), o.CustomerName, lines); err != nil {
		writeError(w, err)
		return
	}

	email := o.Compose(h.Cfg.WarehouseEmail, h.Cfg.CompanyName)
	writeJSON(w, http.StatusOK, submitOrderResponse{
		Subject: email.Subject,
		Body:    email.Body,
		Mailto:  email.Mailto,
	})
}

// SubmitOrderPDF commits the order the same way and returns the warehouse
// pick list as a PDF attachment instead of email text.
func (h *Handlers) SubmitOrderPDF(w http.ResponseWriter, r *http.Request) {
	o, lines, err := h.buildOrder(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.Store.SubmitOrder(r.Context(), o.CustomerName, lines); err != nil {
		writeError(w, err)
		return
	}

	gen := pdfgen.New()
	pdfBytes, err := gen.Generate(o, h.Cfg.CompanyName)
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	key := quote.NormalizeKey(o.CustomerName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ams_order_%s.pdf"`, key))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
