package handlers

import (
	"net/http"
	"strconv"

	"github.com/srbhuyan/shoppingList/pkg/errhttp"
	"github.com/srbhuyan/shoppingList/pkg/httpx"
	appsvcs "github.com/srbhuyan/shoppingList/services/shopping/application/services"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/repositories"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ItemListResponse is the paginated response for GET /items.
type ItemListResponse struct {
	Items  []ItemResponse `json:"items"`
	Total  int            `json:"total"  example:"42"`
	Limit  int            `json:"limit"  example:"50"`
	Offset int            `json:"offset" example:"0"`
} // @name ItemListResponse

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute returns a page of items.
//
//	@Summary		List items
//	@Description	Returns a paginated list of items
//	@Tags			items
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 50, max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ItemListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := repositories.QueryOpts{Limit: defaultPageLimit}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Limit = min(n, maxPageLimit)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	items, total, err := h.svc.Item.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ItemListResponse{
		Items:  make([]ItemResponse, 0, len(items)),
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}

	httpx.JSON(w, http.StatusOK, resp)
}
