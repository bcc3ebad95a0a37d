package handlers

import "github.com/srbhuyan/shoppingList/services/shopping/domain/models"

// ArticleResponse is the serialized view of an item's article.
type ArticleResponse struct {
	EntityID string `json:"entity_id" example:"7b0d7c52-9f2e-4f3a-9c1a-0b54f4e2d310"`
	Name     string `json:"name"      example:"Milk"`
} // @name ArticleResponse

// ItemResponse is the serialized view of an item. Owner sets and creation
// timestamps are internal and deliberately absent.
type ItemResponse struct {
	EntityID string          `json:"entity_id" example:"c1f0e7d4-1f34-4f7e-8f05-2d9d0a3c7b11"`
	Article  ArticleResponse `json:"article"`
	Count    string          `json:"count"     example:"2L"`
	Done     bool            `json:"done"      example:"false"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	resp := ItemResponse{
		EntityID: item.EntityID,
		Count:    item.Count,
		Done:     item.Done,
	}
	if item.Article != nil {
		resp.Article = ArticleResponse{EntityID: item.Article.EntityID, Name: item.Article.Name}
	}
	return resp
}
