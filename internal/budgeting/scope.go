package budgeting

import (
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"golang.org/x/exp/maps"
	"gorm.io/gorm"
)

// Scope is the set of categories a budget tracks spending for.
//
// A budget without included categories tracks all spending, uncategorised
// transactions included. Excluded categories remove their whole subtree.
type Scope struct {
	all      bool
	included map[uuid.UUID]bool
	excluded map[uuid.UUID]bool
}

// LoadScope resolves the budget's category links into a Scope.
func LoadScope(db *gorm.DB, budget models.Budget) (Scope, error) {
	var links []models.BudgetCategory
	err := db.Where(&models.BudgetCategory{BudgetID: budget.ID}).Find(&links).Error
	if err != nil {
		return Scope{}, err
	}

	var included, excluded []uuid.UUID
	for _, link := range links {
		if link.IsExcluded {
			excluded = append(excluded, link.CategoryID)
			continue
		}
		included = append(included, link.CategoryID)
	}

	scope := Scope{
		all:      len(included) == 0,
		included: make(map[uuid.UUID]bool),
		excluded: make(map[uuid.UUID]bool),
	}

	if len(included) > 0 {
		ids, err := models.Descendants(db, budget.OwnerID, included)
		if err != nil {
			return Scope{}, err
		}

		for _, id := range ids {
			scope.included[id] = true
		}
	}

	if len(excluded) > 0 {
		ids, err := models.Descendants(db, budget.OwnerID, excluded)
		if err != nil {
			return Scope{}, err
		}

		for _, id := range ids {
			scope.excluded[id] = true
			delete(scope.included, id)
		}
	}

	return scope, nil
}

// Covers reports if spending in the category counts against the budget.
func (s Scope) Covers(category *uuid.UUID) bool {
	if category == nil {
		return s.all
	}

	if s.excluded[*category] {
		return false
	}

	return s.all || s.included[*category]
}

// Apply restricts a transaction query to the categories of the scope.
func (s Scope) Apply(q *gorm.DB) *gorm.DB {
	if !s.all {
		if len(s.included) == 0 {
			return q.Where("1 = 0")
		}
		return q.Where("category_id IN ?", maps.Keys(s.included))
	}

	if len(s.excluded) > 0 {
		return q.Where("category_id IS NULL OR category_id NOT IN ?", maps.Keys(s.excluded))
	}

	return q
}
