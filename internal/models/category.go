package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCategoryDepth is the number of levels of the category tree: main
// category, sub category and detail category.
const MaxCategoryDepth = 3

// Category groups transactions. Categories form a tree of at most
// MaxCategoryDepth levels.
type Category struct {
	DefaultModel
	OwnerID  uuid.UUID  `json:"ownerId" gorm:"type:uuid;index"`
	Name     string     `json:"name" example:"Groceries"`
	ParentID *uuid.UUID `json:"parentId" gorm:"type:uuid;index"`
	Parent   *Category  `json:"-"`
	Depth    int        `json:"depth" example:"2"` // 1 for main categories
}

var (
	ErrCategoryNameEmpty      = fmt.Errorf("%w: the category name must not be empty", ErrValidation)
	ErrCategoryTooDeep        = fmt.Errorf("%w: categories can only be nested %d levels deep", ErrValidation, MaxCategoryDepth)
	ErrCategoryCycle          = fmt.Errorf("%w: a category cannot be its own ancestor", ErrValidation)
	ErrCategoryParentNotFound = fmt.Errorf("%w parent category matching your query", ErrResourceNotFound)
	ErrCategoryHasChildren    = fmt.Errorf("%w: the category has sub categories, delete them first", ErrConflict)
)

// BeforeSave derives the depth of the category from its parent and
// verifies the tree stays valid.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	db := tx.Session(&gorm.Session{NewDB: true})

	if c.ParentID == nil {
		c.Depth = 1
	} else {
		depth := 1
		next := c.ParentID
		for next != nil {
			if c.ID != uuid.Nil && *next == c.ID {
				return ErrCategoryCycle
			}

			var ancestor Category
			err := db.Where(&Category{OwnerID: c.OwnerID}).First(&ancestor, "id = ?", *next).Error
			if err != nil {
				if errors.Is(err, ErrResourceNotFound) {
					return ErrCategoryParentNotFound
				}
				return err
			}

			depth++
			if depth > MaxCategoryDepth {
				return ErrCategoryTooDeep
			}
			next = ancestor.ParentID
		}
		c.Depth = depth
	}

	if c.ID == uuid.Nil {
		return nil
	}

	height, err := subtreeHeight(db, c.ID)
	if err != nil {
		return err
	}

	if c.Depth+height > MaxCategoryDepth {
		return ErrCategoryTooDeep
	}

	return nil
}

// AfterUpdate moves the depth of all descendants along with the category.
func (c *Category) AfterUpdate(tx *gorm.DB) error {
	return updateChildDepths(tx.Session(&gorm.Session{NewDB: true}), c.ID, c.Depth)
}

func updateChildDepths(db *gorm.DB, parent uuid.UUID, depth int) error {
	var children []Category
	err := db.Where("parent_id = ?", parent).Find(&children).Error
	if err != nil {
		return err
	}

	for _, child := range children {
		err = db.Model(&child).UpdateColumn("depth", depth+1).Error
		if err != nil {
			return err
		}

		err = updateChildDepths(db, child.ID, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}

// subtreeHeight returns the number of levels below the category.
func subtreeHeight(db *gorm.DB, id uuid.UUID) (int, error) {
	var children []Category
	err := db.Where("parent_id = ?", id).Find(&children).Error
	if err != nil {
		return 0, err
	}

	height := 0
	for _, child := range children {
		h, err := subtreeHeight(db, child.ID)
		if err != nil {
			return 0, err
		}

		if h+1 > height {
			height = h + 1
		}
	}

	return height, nil
}

// BeforeDelete refuses to delete categories that still have children.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Session(&gorm.Session{NewDB: true}).Model(&Category{}).Where("parent_id = ?", c.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryHasChildren
	}

	return nil
}

// Descendants returns the IDs of the categories in the subtrees of the
// given roots, the roots included.
func Descendants(db *gorm.DB, owner uuid.UUID, roots []uuid.UUID) ([]uuid.UUID, error) {
	var categories []Category
	err := db.Where(&Category{OwnerID: owner}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]uuid.UUID)
	for _, category := range categories {
		if category.ParentID != nil {
			children[*category.ParentID] = append(children[*category.ParentID], category.ID)
		}
	}

	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, len(roots))
	queue := append([]uuid.UUID{}, roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		queue = append(queue, children[id]...)
	}

	return ids, nil
}
