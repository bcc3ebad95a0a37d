package handlers

import (
	"net/http"

	"github.com/srbhuyan/shoppingList/pkg/auth"
	"github.com/srbhuyan/shoppingList/pkg/errhttp"
	"github.com/srbhuyan/shoppingList/pkg/httpx"
	pkgvalidator "github.com/srbhuyan/shoppingList/pkg/validator"
	appsvcs "github.com/srbhuyan/shoppingList/services/shopping/application/services"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

// CreateItemRequest is the request body for POST /items. The entity id is
// optional; the service generates one when absent.
type CreateItemRequest struct {
	EntityID    string `json:"entity_id,omitempty" validate:"omitempty,max=64"  example:"c1f0e7d4-1f34-4f7e-8f05-2d9d0a3c7b11"`
	ArticleName string `json:"article_name"        validate:"required,max=255"  example:"Milk"`
	Count       string `json:"count"               validate:"max=255"           example:"2L"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item owned by the authenticated user.
//
//	@Summary		Create item
//	@Description	Creates a shopping list item referencing a shared article
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	username, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	owners := models.NewOwnerSet(models.User{Username: username})
	article := models.NewArticle(req.ArticleName, nil)
	item := models.NewItem(article, req.Count, owners)
	if req.EntityID != "" {
		item.EntityID = req.EntityID
	}

	created, err := h.svc.Item.Create(r.Context(), item)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(created))
}
