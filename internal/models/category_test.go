package models_test

import (
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryDepth() {
	main := suite.createTestCategory(models.Category{Name: "Living"})
	sub := suite.createTestCategory(models.Category{Name: "Food", ParentID: &main.ID})
	detail := suite.createTestCategory(models.Category{Name: "Groceries", ParentID: &sub.ID})

	suite.Assert().Equal(1, main.Depth)
	suite.Assert().Equal(2, sub.Depth)
	suite.Assert().Equal(3, detail.Depth)

	err := models.DB.Create(&models.Category{OwnerID: suite.owner, Name: "Organic", ParentID: &detail.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryTooDeep)
}

func (suite *TestSuiteStandard) TestCategoryParentOtherOwner() {
	foreign := suite.createTestCategory(models.Category{OwnerID: uuid.New()})

	err := models.DB.Create(&models.Category{OwnerID: suite.owner, Name: "Mine", ParentID: &foreign.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryParentNotFound)
}

func (suite *TestSuiteStandard) TestCategoryCycle() {
	main := suite.createTestCategory(models.Category{})
	sub := suite.createTestCategory(models.Category{ParentID: &main.ID})

	main.ParentID = &sub.ID
	err := models.DB.Save(&main).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryCycle)

	sub.ParentID = &sub.ID
	err = models.DB.Save(&sub).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryCycle)
}

func (suite *TestSuiteStandard) TestCategoryMoveSubtree() {
	first := suite.createTestCategory(models.Category{})
	second := suite.createTestCategory(models.Category{})
	sub := suite.createTestCategory(models.Category{ParentID: &first.ID})
	detail := suite.createTestCategory(models.Category{ParentID: &sub.ID})

	// Moving a two level subtree below a sub category exceeds the depth
	third := suite.createTestCategory(models.Category{ParentID: &second.ID})
	sub.ParentID = &third.ID
	err := models.DB.Save(&sub).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryTooDeep)

	// Promoting the sub category moves its child up
	sub.ParentID = nil
	err = models.DB.Save(&sub).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(1, sub.Depth)

	err = models.DB.First(&detail, "id = ?", detail.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(2, detail.Depth)
}

func (suite *TestSuiteStandard) TestCategoryDeleteWithChildren() {
	main := suite.createTestCategory(models.Category{})
	sub := suite.createTestCategory(models.Category{ParentID: &main.ID})

	err := models.DB.Delete(&main).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryHasChildren)

	suite.Require().Nil(models.DB.Delete(&sub).Error)
	suite.Assert().Nil(models.DB.Delete(&main).Error)
}

func (suite *TestSuiteStandard) TestDescendants() {
	main := suite.createTestCategory(models.Category{})
	sub := suite.createTestCategory(models.Category{ParentID: &main.ID})
	detail := suite.createTestCategory(models.Category{ParentID: &sub.ID})
	other := suite.createTestCategory(models.Category{})

	ids, err := models.Descendants(models.DB, suite.owner, []uuid.UUID{main.ID})
	suite.Require().Nil(err)
	suite.Assert().ElementsMatch([]uuid.UUID{main.ID, sub.ID, detail.ID}, ids)
	suite.Assert().NotContains(ids, other.ID)

	ids, err = models.Descendants(models.DB, suite.owner, []uuid.UUID{sub.ID, detail.ID})
	suite.Require().Nil(err)
	suite.Assert().ElementsMatch([]uuid.UUID{sub.ID, detail.ID}, ids)
}
