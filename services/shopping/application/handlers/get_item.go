package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srbhuyan/shoppingList/pkg/errhttp"
	"github.com/srbhuyan/shoppingList/pkg/httpx"
	appsvcs "github.com/srbhuyan/shoppingList/services/shopping/application/services"
)

// GetItemHandler handles GET /items/{itemID} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches a single item by entity id.
//
//	@Summary		Get item
//	@Description	Fetches a single item by entity id
//	@Tags			items
//	@Produce		json
//	@Param			itemID	path		string	true	"Item entity id"
//	@Success		200		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing item id"})
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
