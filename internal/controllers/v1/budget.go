package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/period"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetEditable struct {
	Name          string           `json:"name" example:"Household"`
	Amount        decimal.Decimal  `json:"amount" example:"800"`
	CycleType     models.CycleType `json:"cycleType" example:"MONTH"`
	CycleStartDay int              `json:"cycleStartDay" example:"1"` // Weekday (0 = Sunday) for weekly budgets, day of month for monthly budgets
	StartDate     types.Date       `json:"startDate" swaggertype:"string" example:"2026-01-01"`
	EndDate       *types.Date      `json:"endDate" swaggertype:"string" example:"2026-12-31"` // Inclusive
	IsRecurring   bool             `json:"isRecurring" example:"true"`
	Rollover      bool             `json:"rollover" example:"false"`
	IsActive      *bool            `json:"isActive" example:"true"` // Defaults to true
}

// editableBudgetFields are the fields a budget update writes.
var editableBudgetFields = []string{"Name", "Amount", "CycleType", "CycleStartDay", "StartDate", "EndDate", "IsRecurring", "Rollover", "IsActive", "UpdatedAt"}

func (editable BudgetEditable) apply(budget *models.Budget) {
	budget.Name = editable.Name
	budget.Amount = editable.Amount
	budget.CycleType = editable.CycleType
	budget.CycleStartDay = editable.CycleStartDay
	budget.StartDate = editable.StartDate
	budget.EndDate = editable.EndDate
	budget.IsRecurring = editable.IsRecurring
	budget.Rollover = editable.Rollover
	if editable.IsActive != nil {
		budget.IsActive = *editable.IsActive
	}
}

// periodsChanged reports if the update changes the periods or the
// amounts of a budget, which invalidates its snapshots.
func periodsChanged(before, after models.Budget) bool {
	endChanged := (before.EndDate == nil) != (after.EndDate == nil) ||
		(before.EndDate != nil && after.EndDate != nil && !before.EndDate.Equal(*after.EndDate))

	return !before.Amount.Equal(after.Amount) ||
		before.CycleType != after.CycleType ||
		before.CycleStartDay != after.CycleStartDay ||
		!before.StartDate.Equal(after.StartDate) ||
		endChanged ||
		before.IsRecurring != after.IsRecurring ||
		before.Rollover != after.Rollover ||
		before.IsActive != after.IsActive
}

type BudgetCategoryEditable struct {
	Amount     decimal.Decimal `json:"amount" example:"200"`
	IsExcluded bool            `json:"isExcluded" example:"false"` // Removes the category and its sub categories from the budget
}

type BudgetCategoryCreate struct {
	CategoryID uuid.UUID `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	BudgetCategoryEditable
}

type BudgetLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                    // The budget itself
	Categories  string `json:"categories" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/categories"`   // Categories of the budget
	Recalculate string `json:"recalculate" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/recalculate"` // Recalculates all periods
}

// Budget is the API representation of a budget.
type Budget struct {
	models.Budget
	Period     *period.Window                `json:"period"` // The active period, null if the budget has no active period
	Categories []models.BudgetCategory       `json:"categories"`
	Snapshots  []models.BudgetPeriodSnapshot `json:"snapshots"` // Closed periods, oldest first
	Links      BudgetLinks                   `json:"links"`
}

func (co Controller) newBudget(c *gin.Context, model models.Budget) (Budget, error) {
	url := c.GetString(string(models.ContextURL))

	b := Budget{
		Budget:     model,
		Categories: make([]models.BudgetCategory, 0),
		Snapshots:  make([]models.BudgetPeriodSnapshot, 0),
		Links: BudgetLinks{
			Self:        fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Categories:  fmt.Sprintf("%s/v1/budgets/%s/categories", url, model.ID),
			Recalculate: fmt.Sprintf("%s/v1/budgets/%s/recalculate", url, model.ID),
		},
	}

	if window, ok := period.ForBudget(model, types.DateOf(co.now())); ok {
		b.Period = &window
	}

	err := co.db(c).Where(&models.BudgetCategory{BudgetID: model.ID}).Order("created_at ASC").Find(&b.Categories).Error
	if err != nil {
		return Budget{}, err
	}

	err = co.db(c).Where(&models.BudgetPeriodSnapshot{BudgetID: model.ID}).Order("period_start ASC").Find(&b.Snapshots).Error
	if err != nil {
		return Budget{}, err
	}

	return b, nil
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PUT("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
		r.POST("/:id/recalculate", co.RecalculateBudget)
	}

	// Categories of the budget
	{
		r.OPTIONS("/:id/categories", co.OptionsBudgetCategoryList)
		r.GET("/:id/categories", co.GetBudgetCategories)
		r.POST("/:id/categories", co.CreateBudgetCategory)
		r.OPTIONS("/:id/categories/:categoryId", co.OptionsBudgetCategoryDetail)
		r.PUT("/:id/categories/:categoryId", co.UpdateBudgetCategory)
		r.DELETE("/:id/categories/:categoryId", co.DeleteBudgetCategory)
	}
}

func (co Controller) getBudget(c *gin.Context) (models.Budget, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return models.Budget{}, false
	}

	var budget models.Budget
	err = co.db(c).Where(&models.Budget{OwnerID: owner(c)}).First(&budget, "id = ?", uri.ID.UUID).Error
	if err != nil {
		fail(c, err)
		return models.Budget{}, false
	}

	return budget, true
}

// recalculate rebuilds all periods of the budget.
func (co Controller) recalculate(c *gin.Context, budget *models.Budget) error {
	return co.Budgets.RecalculateBudget(co.db(c), budget, budget.StartDate)
}

// change runs a write that invalidates the snapshots of the budget
// together with the recalculation of all its periods.
func (co Controller) change(c *gin.Context, budget *models.Budget, write func(tx *gorm.DB) error) error {
	return co.Budgets.ChangeBudget(co.db(c), budget, budget.StartDate, write)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	_, ok := co.getBudget(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List budgets
// @Description	Returns all budgets of the user. Closed periods are snapshotted and the pending amount is refreshed before the budgets are returned.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	Response[[]Budget]
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			active	query		bool	false	"Filter by active state"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter struct {
		Active *bool `form:"active"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, err)
		return
	}

	q := co.db(c).Where(&models.Budget{OwnerID: owner(c)}).Order("name ASC")
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}

	var budgets []models.Budget
	err := q.Find(&budgets).Error
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]Budget, 0)
	for _, budget := range budgets {
		err = co.Budgets.Evaluate(co.db(c), &budget)
		if err != nil {
			fail(c, err)
			return
		}

		b, err := co.newBudget(c, budget)
		if err != nil {
			fail(c, err)
			return
		}
		data = append(data, b)
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get budget
// @Description	Returns a specific budget with its categories and the snapshots of its closed periods
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response[Budget]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, ok := co.getBudget(c)
	if !ok {
		return
	}

	err := co.Budgets.Evaluate(co.db(c), &budget)
	if err != nil {
		fail(c, err)
		return
	}

	b, err := co.newBudget(c, budget)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, b)
}

// @Summary		Create budget
// @Description	Creates a new budget. Periods that already closed are snapshotted right away.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[Budget]
// @Failure		400		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	budget := models.Budget{OwnerID: owner(c), IsActive: true}
	editable.apply(&budget)

	err = co.db(c).Create(&budget).Error
	if err != nil {
		fail(c, err)
		return
	}

	err = co.Budgets.Evaluate(co.db(c), &budget)
	if err != nil {
		fail(c, err)
		return
	}

	b, err := co.newBudget(c, budget)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, b)
}

// @Summary		Update budget
// @Description	Updates a budget. Changes to the amount, the cycle, the dates or the rollover recalculate all periods.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Budget]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, ok := co.getBudget(c)
	if !ok {
		return
	}

	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	before := budget
	editable.apply(&budget)

	if periodsChanged(before, budget) {
		err = co.change(c, &budget, func(tx *gorm.DB) error {
			return tx.Select(editableBudgetFields).Save(&budget).Error
		})
	} else {
		err = co.db(c).Select(editableBudgetFields).Save(&budget).Error
	}
	if err != nil {
		fail(c, err)
		return
	}

	err = co.Budgets.Evaluate(co.db(c), &budget)
	if err != nil {
		fail(c, err)
		return
	}

	b, err := co.newBudget(c, budget)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, b)
}

// @Summary		Delete budget
// @Description	Deletes a budget with its categories and snapshots
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, ok := co.getBudget(c)
	if !ok {
		return
	}

	err := co.db(c).Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&models.BudgetCategory{BudgetID: budget.ID}).Delete(&models.BudgetCategory{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Where(&models.BudgetPeriodSnapshot{BudgetID: budget.ID}).Delete(&models.BudgetPeriodSnapshot{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&budget).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	log.Debug().Str("budget", budget.ID.String()).Msg("deleted budget")
	c.Status(http.StatusNoContent)
}

// @Summary		Recalculate budget
// @Description	Recalculates all closed periods of the budget and refreshes the active one
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response[Budget]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/recalculate [post]
func (co Controller) RecalculateBudget(c *gin.Context) {
	budget, ok := co.getBudget(c)
	if !ok {
		return
	}

	err := co.recalculate(c, &budget)
	if err != nil {
		fail(c, err)
		return
	}

	b, err := co.newBudget(c, budget)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, b)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/categories [options]
func (co Controller) OptionsBudgetCategoryList(c *gin.Context) {
	_, ok := co.getBudget(c)
	if !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryId	path		string	true	"ID of the category"
// @Router			/v1/budgets/{id}/categories/{categoryId} [options]
func (co Controller) OptionsBudgetCategoryDetail(c *gin.Context) {
	_, _, ok := co.getBudgetCategory(c)
	if !ok {
		return
	}

	httputil.OptionsPutDelete(c)
}

func (co Controller) getBudgetCategory(c *gin.Context) (models.Budget, models.BudgetCategory, bool) {
	var uri URIBudgetCategory
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return models.Budget{}, models.BudgetCategory{}, false
	}

	budget, ok := co.getBudget(c)
	if !ok {
		return models.Budget{}, models.BudgetCategory{}, false
	}

	var link models.BudgetCategory
	err = co.db(c).Where(&models.BudgetCategory{BudgetID: budget.ID, CategoryID: uri.CategoryID.UUID}).First(&link).Error
	if err != nil {
		fail(c, err)
		return models.Budget{}, models.BudgetCategory{}, false
	}

	return budget, link, true
}

// @Summary		List budget categories
// @Description	Returns the categories linked to the budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response[[]models.BudgetCategory]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/categories [get]
func (co Controller) GetBudgetCategories(c *gin.Context) {
	budget, ok := co.getBudget(c)
	if !ok {
		return
	}

	links := make([]models.BudgetCategory, 0)
	err := co.db(c).Where(&models.BudgetCategory{BudgetID: budget.ID}).Order("created_at ASC").Find(&links).Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, links)
}

// @Summary		Link category
// @Description	Links a category to the budget and recalculates all periods
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201			{object}	Response[models.BudgetCategory]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		BudgetCategoryCreate	true	"Budget category"
// @Router			/v1/budgets/{id}/categories [post]
func (co Controller) CreateBudgetCategory(c *gin.Context) {
	budget, ok := co.getBudget(c)
	if !ok {
		return
	}

	var editable BudgetCategoryCreate
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	var category models.Category
	err = co.db(c).Where(&models.Category{OwnerID: owner(c)}).First(&category, "id = ?", editable.CategoryID).Error
	if err != nil {
		fail(c, err)
		return
	}

	link := models.BudgetCategory{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     editable.Amount,
		IsExcluded: editable.IsExcluded,
	}

	err = co.change(c, &budget, func(tx *gorm.DB) error {
		return tx.Create(&link).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, link)
}

// @Summary		Update budget category
// @Description	Updates the amount and the exclusion of a linked category and recalculates all periods
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[models.BudgetCategory]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryId	path		string					true	"ID of the category"
// @Param			category	body		BudgetCategoryEditable	true	"Budget category"
// @Router			/v1/budgets/{id}/categories/{categoryId} [put]
func (co Controller) UpdateBudgetCategory(c *gin.Context) {
	budget, link, ok := co.getBudgetCategory(c)
	if !ok {
		return
	}

	var editable BudgetCategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	link.Amount = editable.Amount
	link.IsExcluded = editable.IsExcluded

	err = co.change(c, &budget, func(tx *gorm.DB) error {
		return tx.Select("Amount", "IsExcluded", "UpdatedAt").Save(&link).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, link)
}

// @Summary		Unlink category
// @Description	Removes a category from the budget and recalculates all periods
// @Tags			Budgets
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryId	path		string	true	"ID of the category"
// @Router			/v1/budgets/{id}/categories/{categoryId} [delete]
func (co Controller) DeleteBudgetCategory(c *gin.Context) {
	budget, link, ok := co.getBudgetCategory(c)
	if !ok {
		return
	}

	err := co.change(c, &budget, func(tx *gorm.DB) error {
		return tx.Unscoped().Delete(&link).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
