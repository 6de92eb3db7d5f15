package global

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator cho query param của dashboard
	_ = Validate.RegisterValidation("granularity", validateGranularity)
	_ = Validate.RegisterValidation("compare_mode", validateCompareMode)
	_ = Validate.RegisterValidation("range_preset", validateRangePreset)
	_ = Validate.RegisterValidation("product_type", validateProductType)
	_ = Validate.RegisterValidation("timezone", validateTimezone)
}

// validateGranularity kiểm tra groupBy hợp lệ (rỗng = để server tự suy ra)
func validateGranularity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "day", "week", "month":
		return true
	}
	return false
}

// validateCompareMode kiểm tra compare mode. "prev" là alias client cũ của "previous".
func validateCompareMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "none", "previous", "prev", "yoy":
		return true
	}
	return false
}

// validateRangePreset kiểm tra preset khoảng thời gian
func validateRangePreset(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "today", "yesterday", "last7", "last30", "thisMonth", "prevMonth", "custom":
		return true
	}
	return false
}

// validateProductType kiểm tra filter loại sản phẩm
func validateProductType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "all", "single", "subscription", "tip":
		return true
	}
	return false
}

// validateTimezone kiểm tra tz là IANA timezone load được
func validateTimezone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.LoadLocation(value)
	return err == nil
}
