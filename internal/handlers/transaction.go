package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mariocampos1028/bankinc/internal/envelope"
	"github.com/shopspring/decimal"
)

type purchaseRequest struct {
	Price  decimal.Decimal `json:"price"`
	CardID string          `json:"cardId"`
}

type voidRequest struct {
	CardID        string `json:"cardId"`
	TransactionID int64  `json:"transactionId"`
}

// CreateTransaction handles POST /transaction/create
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	txn, err := h.transactionService.Purchase(r.Context(), req.CardID, req.Price)
	if err != nil {
		h.respondError(w, "create transaction", err)
		return
	}

	h.respondSuccess(w, "transaction created successfully", txn)
}

// GetTransaction handles GET /transaction/{transactionId}
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "transactionId"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, envelope.Error("transaction not found"))
		return
	}

	txn, err := h.transactionService.GetTransaction(r.Context(), id)
	if err != nil {
		h.respondError(w, "get transaction", err)
		return
	}

	h.respondSuccess(w, "transaction found", txn)
}

// VoidTransaction handles POST /transaction/anulation
func (h *Handler) VoidTransaction(w http.ResponseWriter, r *http.Request) {
	var req voidRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	txn, err := h.transactionService.Void(r.Context(), req.CardID, req.TransactionID)
	if err != nil {
		h.respondError(w, "void transaction", err)
		return
	}

	h.respondSuccess(w, "transaction voided successfully", txn)
}

// ListCardTransactions handles GET /transaction/card/{cardId}
func (h *Handler) ListCardTransactions(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")

	txns, err := h.transactionService.ListByCard(r.Context(), cardID)
	if err != nil {
		h.respondError(w, "list transactions", err)
		return
	}

	h.respondSuccess(w, "transactions found", txns)
}
