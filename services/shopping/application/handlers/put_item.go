package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srbhuyan/shoppingList/pkg/auth"
	"github.com/srbhuyan/shoppingList/pkg/errhttp"
	"github.com/srbhuyan/shoppingList/pkg/httpx"
	pkgvalidator "github.com/srbhuyan/shoppingList/pkg/validator"
	appsvcs "github.com/srbhuyan/shoppingList/services/shopping/application/services"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

// UpdateItemRequest is the request body for PUT /items/{itemID}. It describes
// the item's full new state; the owner set is replaced with the given
// usernames, defaulting to the authenticated user when empty.
type UpdateItemRequest struct {
	ArticleName string   `json:"article_name" validate:"required,max=255" example:"Milk"`
	Count       string   `json:"count"        validate:"max=255"          example:"3L"`
	Done        bool     `json:"done"                                     example:"true"`
	Owners      []string `json:"owners,omitempty" validate:"dive,min=1,max=64"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{itemID} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces the state of an existing item.
//
//	@Summary		Update item
//	@Description	Replaces an item's article, count, done flag and owners
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string				true	"Item entity id"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{itemID} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	username, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing item id"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	owners := models.NewOwnerSet(models.User{Username: username})
	if len(req.Owners) > 0 {
		owners = models.NewOwnerSet()
		for _, name := range req.Owners {
			owners.Add(models.User{Username: name})
		}
	}

	item := models.NewItem(models.NewArticle(req.ArticleName, nil), req.Count, owners)
	item.EntityID = itemID
	item.Done = req.Done

	updated, err := h.svc.Item.Update(r.Context(), item)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(updated))
}
