package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/cache"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
)

type CategoryEditable struct {
	Name     string     `json:"name" example:"Groceries"`
	ParentID *uuid.UUID `json:"parentId" example:"9d1b6a36-49b6-4bd0-9a44-c0f8c3c1f0c5"` // Parent category. Categories can be nested three levels deep
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                   // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transaction?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions of the category
}

// Category is the API representation of a category.
type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.ContextURL))

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transaction?category=%s", url, model.ID),
		},
	}
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

func (co Controller) getCategory(c *gin.Context) (models.Category, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return models.Category{}, false
	}

	var category models.Category
	err = co.db(c).Where(&models.Category{OwnerID: owner(c)}).First(&category, "id = ?", uri.ID.UUID).Error
	if err != nil {
		fail(c, err)
		return models.Category{}, false
	}

	return category, true
}

// categories returns all categories of the owner through the cache.
func (co Controller) categories(c *gin.Context) ([]models.Category, error) {
	id := owner(c)

	return cache.Fetch(c.Request.Context(), co.Cache, cache.CategoriesKey(id), func() ([]models.Category, error) {
		categories := make([]models.Category, 0)
		err := co.db(c).Where(&models.Category{OwnerID: id}).Order("depth ASC, name ASC").Find(&categories).Error
		return categories, err
	})
}

func (co Controller) invalidateCategories(c *gin.Context) {
	cache.Invalidate(c.Request.Context(), co.Cache, cache.CategoriesKey(owner(c)))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	_, ok := co.getCategory(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List categories
// @Description	Returns all categories of the user, main categories first
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	Response[[]Category]
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			parent	query		string	false	"Only return the direct children of this category"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	parent, err := httputil.UUIDFromString(c.Query("parent"))
	if err != nil {
		fail(c, err)
		return
	}

	categories, err := co.categories(c)
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]Category, 0)
	for _, category := range categories {
		if parent != uuid.Nil && (category.ParentID == nil || *category.ParentID != parent) {
			continue
		}

		data = append(data, newCategory(c, category))
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response[Category]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, ok := co.getCategory(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, newCategory(c, category))
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	Response[Category]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	category := models.Category{
		OwnerID:  owner(c),
		Name:     editable.Name,
		ParentID: editable.ParentID,
	}

	err = co.db(c).Create(&category).Error
	if err != nil {
		fail(c, err)
		return
	}

	co.invalidateCategories(c)
	respond(c, http.StatusCreated, newCategory(c, category))
}

// @Summary		Update category
// @Description	Updates a category. Moving a category moves all of its children.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[Category]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	category, ok := co.getCategory(c)
	if !ok {
		return
	}

	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	category.Name = editable.Name
	category.ParentID = editable.ParentID

	err = co.db(c).Select("Name", "ParentID", "Depth", "UpdatedAt").Save(&category).Error
	if err != nil {
		fail(c, err)
		return
	}

	co.invalidateCategories(c)
	respond(c, http.StatusOK, newCategory(c, category))
}

// @Summary		Delete category
// @Description	Deletes a category. Categories with children cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	category, ok := co.getCategory(c)
	if !ok {
		return
	}

	err := co.db(c).Delete(&category).Error
	if err != nil {
		fail(c, err)
		return
	}

	co.invalidateCategories(c)
	c.Status(http.StatusNoContent)
}
