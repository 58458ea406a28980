package v1_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgerbook/backend/internal/cache"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/test"
)

func (suite *TestSuiteStandard) listCategories(query string) []v1.Category {
	r := suite.request(http.MethodGet, "/v1/categories"+query, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[[]v1.Category]
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) cached() bool {
	var categories []models.Category
	ok, err := test.Cache.Get(context.Background(), cache.CategoriesKey(suite.user), &categories)
	suite.Require().Nil(err)
	return ok
}

func (suite *TestSuiteStandard) TestCategoryTree() {
	food := suite.createTestCategory("Food", nil)
	groceries := suite.createTestCategory("Groceries", &food.ID)
	sweets := suite.createTestCategory("Sweets", &groceries.ID)

	suite.Assert().Equal(1, food.Depth)
	suite.Assert().Equal(2, groceries.Depth)
	suite.Assert().Equal(3, sweets.Depth)

	// A fourth level is rejected
	r := suite.request(http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Chocolate", ParentID: &sweets.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(suite.decodeError(&r), "3 levels deep")

	// Categories with children cannot be deleted
	r = suite.request(http.MethodDelete, fmt.Sprintf("/v1/categories/%s", groceries.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	children := suite.listCategories(fmt.Sprintf("?parent=%s", food.ID))
	suite.Require().Len(children, 1)
	suite.Assert().Equal(groceries.ID, children[0].ID)

	r = suite.request(http.MethodGet, "/v1/categories?parent=food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Moving a category moves its subtree
	r = suite.request(http.MethodPut, fmt.Sprintf("/v1/categories/%s", groceries.ID), v1.CategoryEditable{Name: "Groceries"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	for _, c := range suite.listCategories("") {
		if c.ID == sweets.ID {
			suite.Assert().Equal(2, c.Depth)
		}
	}
}

func (suite *TestSuiteStandard) TestCategoryCache() {
	suite.Assert().False(suite.cached())

	food := suite.createTestCategory("Food", nil)
	suite.Assert().Len(suite.listCategories(""), 1)
	suite.Assert().True(suite.cached(), "the list must be cached after reading it")

	// Every write invalidates the list
	travel := suite.createTestCategory("Travel", nil)
	suite.Assert().False(suite.cached())
	suite.Assert().Len(suite.listCategories(""), 2)

	r := suite.request(http.MethodPut, fmt.Sprintf("/v1/categories/%s", food.ID), v1.CategoryEditable{Name: "Food & Drinks"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().False(suite.cached())

	categories := suite.listCategories("")
	suite.Require().Len(categories, 2)
	suite.Assert().Equal("Food & Drinks", categories[0].Name)

	r = suite.request(http.MethodDelete, fmt.Sprintf("/v1/categories/%s", travel.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().False(suite.cached())
	suite.Assert().Len(suite.listCategories(""), 1)
}
