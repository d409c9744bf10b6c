// Package scope holds reusable gorm query scopes shared by the repositories.
package scope

import "gorm.io/gorm"

func ByEmployee(employeeID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

func ActiveOnly() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = true")
	}
}
