package services

import (
	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

// BadgeInput carries the admin-editable badge fields. Pointer fields on
// update mean "leave unchanged".
type BadgeInput struct {
	Code           string               `json:"code"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Icon           string               `json:"icon"`
	Category       models.BadgeCategory `json:"category"`
	ConditionType  models.ConditionType `json:"conditionType"`
	ConditionValue int                  `json:"conditionValue"`
	XPReward       int                  `json:"xpReward"`
	DisplayOrder   *int                 `json:"order"`
}

type BadgeUpdate struct {
	Name           *string               `json:"name"`
	Description    *string               `json:"description"`
	Icon           *string               `json:"icon"`
	Category       *models.BadgeCategory `json:"category"`
	Code           *string               `json:"code"`
	ConditionType  *models.ConditionType `json:"conditionType"`
	ConditionValue *int                  `json:"conditionValue"`
	XPReward       *int                  `json:"xpReward"`
	DisplayOrder   *int                  `json:"order"`
	IsActive       *bool                 `json:"isActive"`
}

// CreateBadge inserts a catalog entry. DisplayOrder defaults to
// max(existing)+1 so the catalog stays stably ordered without gaps
// mattering.
func CreateBadge(input BadgeInput) (*models.Badge, error) {
	if input.Code == "" || input.Name == "" || input.ConditionType == "" {
		return nil, apperrors.Validation("code, name and conditionType are required")
	}
	if input.ConditionValue < 1 {
		return nil, apperrors.Validation("conditionValue must be a positive integer")
	}
	if input.XPReward < 0 {
		return nil, apperrors.Validation("xpReward must not be negative")
	}

	var count int64
	database.DB.Model(&models.Badge{}).Where("code = ?", input.Code).Count(&count)
	if count > 0 {
		return nil, apperrors.Conflict("A badge with this code already exists")
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	} else {
		var maxOrder int64
		database.DB.Model(&models.Badge{}).
			Select("coalesce(max(display_order), 0)").
			Scan(&maxOrder)
		order = int(maxOrder) + 1
	}

	badge := models.Badge{
		Code:           input.Code,
		Name:           input.Name,
		Description:    input.Description,
		Icon:           input.Icon,
		Category:       input.Category,
		ConditionType:  input.ConditionType,
		ConditionValue: input.ConditionValue,
		XPReward:       input.XPReward,
		DisplayOrder:   order,
		IsActive:       true,
	}
	if err := database.DB.Create(&badge).Error; err != nil {
		// The unique index backs the pre-check under concurrency.
		return nil, apperrors.Conflict("A badge with this code already exists")
	}
	return &badge, nil
}

// UpdateBadge applies a partial update. The code is immutable once any
// student holds the badge; deactivation is how history-bearing badges
// leave the catalog.
func UpdateBadge(badgeID string, update BadgeUpdate) (*models.Badge, error) {
	var badge models.Badge
	if err := database.DB.First(&badge, "id = ?", badgeID).Error; err != nil {
		return nil, apperrors.NotFound("Badge not found")
	}

	if update.Code != nil && *update.Code != badge.Code {
		var refs int64
		database.DB.Model(&models.StudentBadge{}).Where("badge_id = ?", badgeID).Count(&refs)
		if refs > 0 {
			return nil, apperrors.Conflict("Badge code cannot change once students hold the badge")
		}
		var dupes int64
		database.DB.Model(&models.Badge{}).
			Where("code = ? AND id <> ?", *update.Code, badgeID).
			Count(&dupes)
		if dupes > 0 {
			return nil, apperrors.Conflict("A badge with this code already exists")
		}
		badge.Code = *update.Code
	}

	if update.Name != nil {
		badge.Name = *update.Name
	}
	if update.Description != nil {
		badge.Description = *update.Description
	}
	if update.Icon != nil {
		badge.Icon = *update.Icon
	}
	if update.Category != nil {
		badge.Category = *update.Category
	}
	if update.ConditionType != nil {
		badge.ConditionType = *update.ConditionType
	}
	if update.ConditionValue != nil {
		if *update.ConditionValue < 1 {
			return nil, apperrors.Validation("conditionValue must be a positive integer")
		}
		badge.ConditionValue = *update.ConditionValue
	}
	if update.XPReward != nil {
		if *update.XPReward < 0 {
			return nil, apperrors.Validation("xpReward must not be negative")
		}
		badge.XPReward = *update.XPReward
	}
	if update.DisplayOrder != nil {
		badge.DisplayOrder = *update.DisplayOrder
	}
	if update.IsActive != nil {
		badge.IsActive = *update.IsActive
	}

	if err := database.DB.Save(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

// ListActiveBadges returns the evaluation/display catalog. Order is
// display_order then id, which also fixes the award iteration order.
func ListActiveBadges() ([]models.Badge, error) {
	var badges []models.Badge
	err := database.DB.
		Where("is_active = ?", true).
		Order("display_order asc, id asc").
		Find(&badges).Error
	return badges, err
}
