// Package dashboarddto chứa DTO dùng chung cho các domain dashboard
// (revenue, acquisition, content, audience). Giữ tên cấu trúc cũ
// (dto.<domain>.<entity>.go).
package dashboarddto

// DashboardQuery là query chung cho tất cả endpoint dashboard.
// start/end chỉ có hiệu lực khi có đủ cả hai, ngược lại dùng preset.
type DashboardQuery struct {
	Start    string `query:"start"`                                 // Thời điểm bắt đầu (ISO hoặc YYYY-MM-DD)
	End      string `query:"end"`                                   // Thời điểm kết thúc (ISO hoặc YYYY-MM-DD)
	Preset   string `query:"preset" validate:"range_preset"`        // Preset khoảng thời gian (mặc định last7)
	Tz       string `query:"tz" validate:"timezone"`                // IANA timezone (mặc định Asia/Tokyo)
	GroupBy  string `query:"groupBy" validate:"granularity"`        // day|week|month, bỏ trống để suy ra từ range
	Compare  string `query:"compare" validate:"compare_mode"`       // none|previous|prev|yoy
	Platform string `query:"platform"`                              // CSV filter platform
	Country  string `query:"country"`                               // CSV filter country
	Device   string `query:"device"`                                // CSV filter device
	UserType string `query:"userType"`                              // CSV filter user type
	Product  string `query:"product"`                               // CSV filter product type
}

// PaginationQuery là query phân trang cho các endpoint trả danh sách dài
// (revenue transactions, content performance).
type PaginationQuery struct {
	Page  int `query:"page"`  // Trang hiện tại (mặc định 1)
	Limit int `query:"limit"` // Số dòng mỗi trang (mặc định 50, tối đa 200)
}

// TrendQuery là query bổ sung cho GET /revenue/trend.
type TrendQuery struct {
	Product string `query:"product" validate:"omitempty,product_type"` // all|single|subscription|tip
}
