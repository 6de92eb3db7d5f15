package common

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized    = 401 // Chưa xác thực
	StatusForbidden       = 403 // Không có quyền truy cập
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Thao tác thành công"

	// Error Messages
	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgTooManyRequests = "Quá nhiều yêu cầu"
	MsgInternalError   = "Lỗi hệ thống"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
	MsgInvalidDate     = "Ngày không hợp lệ hoặc không parse được"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi (ví dụ: Validation)
	SubCategory string // Phân loại con (ví dụ: Input)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	ErrCodeValidationDate = ErrorCode{
		Code:        "VAL_003",
		Category:    "Validation",
		SubCategory: "Date",
		Description: "Lỗi parse ngày tháng của khoảng thời gian",
	}

	// Generation Errors (GEN_xxx) — lỗi trong engine sinh dữ liệu mock
	ErrCodeGeneration = ErrorCode{
		Code:        "GEN",
		Category:    "Generation",
		SubCategory: "General",
		Description: "Lỗi sinh dữ liệu chung",
	}

	ErrCodeGenerationPool = ErrorCode{
		Code:        "GEN_001",
		Category:    "Generation",
		SubCategory: "Pool",
		Description: "Chọn ngẫu nhiên trên pool rỗng (lỗi cấu hình/lập trình)",
	}

	ErrCodeGenerationAssembly = ErrorCode{
		Code:        "GEN_002",
		Category:    "Generation",
		SubCategory: "Assembly",
		Description: "Lỗi lắp ráp response từ dataset đã sinh",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)

	// ErrInvalidDate: endpoint của khoảng thời gian không parse được. Fatal với
	// request đó, không retry — generator là hàm thuần nên retry cũng fail y hệt.
	ErrInvalidDate = NewError(ErrCodeValidationDate, MsgInvalidDate, StatusBadRequest, nil)

	// ErrEmptyPool: weighted/random pick trên tập ứng viên rỗng. Đây là lỗi
	// lập trình hoặc cấu hình, không phải lỗi của client.
	ErrEmptyPool = NewError(ErrCodeGenerationPool, "Không thể chọn ngẫu nhiên từ danh sách rỗng", StatusInternalServerError, nil)
)
