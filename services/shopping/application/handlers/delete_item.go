package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srbhuyan/shoppingList/pkg/errhttp"
	"github.com/srbhuyan/shoppingList/pkg/httpx"
	appsvcs "github.com/srbhuyan/shoppingList/services/shopping/application/services"
)

// DeleteItemHandler handles DELETE /items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item after removing it from every containing list.
//
//	@Summary		Delete item
//	@Description	Removes the item from all containing lists, then deletes it
//	@Tags			items
//	@Produce		json
//	@Param			itemID	path	string	true	"Item entity id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing item id"})
		return
	}

	if err := h.svc.Item.Delete(r.Context(), itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
