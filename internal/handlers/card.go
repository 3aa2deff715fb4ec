package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mariocampos1028/bankinc/internal/envelope"
	"github.com/shopspring/decimal"
)

type enrollCardRequest struct {
	CardID string `json:"cardId"`
}

type topUpCardRequest struct {
	Balance decimal.Decimal `json:"balance"`
	CardID  string          `json:"cardId"`
}

// IssueCard handles GET /card/{productId}/number
func (h *Handler) IssueCard(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	firstName := r.URL.Query().Get("firstName")
	lastName := r.URL.Query().Get("lastName")

	card, err := h.cardService.Issue(r.Context(), productID, firstName, lastName)
	if err != nil {
		h.respondError(w, "issue card", err)
		return
	}

	h.respondSuccess(w, "card generated successfully", card)
}

// EnrollCard handles POST /card/enroll
func (h *Handler) EnrollCard(w http.ResponseWriter, r *http.Request) {
	var req enrollCardRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	card, err := h.cardService.Activate(r.Context(), req.CardID)
	if err != nil {
		h.respondError(w, "activate card", err)
		return
	}

	h.respondSuccess(w, "card activated successfully", card)
}

// BlockCard handles DELETE /card?cardId=
func (h *Handler) BlockCard(w http.ResponseWriter, r *http.Request) {
	cardID := r.URL.Query().Get("cardId")
	if cardID == "" {
		h.writeJSON(w, http.StatusBadRequest, envelope.Error("cardId is required"))
		return
	}

	card, err := h.cardService.Block(r.Context(), cardID)
	if err != nil {
		h.respondError(w, "block card", err)
		return
	}

	h.respondSuccess(w, "card blocked successfully", card)
}

// TopUpCard handles POST /card/balance
func (h *Handler) TopUpCard(w http.ResponseWriter, r *http.Request) {
	var req topUpCardRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	card, err := h.cardService.TopUp(r.Context(), req.CardID, req.Balance)
	if err != nil {
		h.respondError(w, "top up card", err)
		return
	}

	h.respondSuccess(w, "card topped up successfully", card)
}

// GetBalance handles GET /card/balance/{cardId}
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")

	card, err := h.cardService.GetBalance(r.Context(), cardID)
	if err != nil {
		h.respondError(w, "get balance", err)
		return
	}

	h.respondSuccess(w, "balance retrieved successfully", card)
}
