package mockgen

import "time"

// Granularity là độ chi tiết gom nhóm thời gian của một dashboard request.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// CompareMode là chế độ so sánh của request (không so sánh / kỳ trước / cùng kỳ năm trước).
type CompareMode string

const (
	CompareNone     CompareMode = "none"
	ComparePrevious CompareMode = "previous"
	CompareYoy      CompareMode = "yoy"
)

// RangePreset là các khoảng thời gian đặt tên sẵn mà dashboard hỗ trợ.
type RangePreset string

const (
	PresetToday     RangePreset = "today"
	PresetYesterday RangePreset = "yesterday"
	PresetLast7     RangePreset = "last7"
	PresetLast30    RangePreset = "last30"
	PresetThisMonth RangePreset = "thisMonth"
	PresetPrevMonth RangePreset = "prevMonth"
	PresetCustom    RangePreset = "custom"
)

// ProductType là loại sản phẩm của một giao dịch.
type ProductType string

const (
	ProductSingle       ProductType = "single"
	ProductSubscription ProductType = "subscription"
	ProductTip          ProductType = "tip"
)

// ProductTypes là thứ tự sinh cố định của các loại sản phẩm. Thứ tự này
// quyết định thứ tự draw trên PRNG nên không được thay đổi.
var ProductTypes = []ProductType{ProductSingle, ProductSubscription, ProductTip}

// TransactionStatus là trạng thái của một giao dịch.
type TransactionStatus string

const (
	StatusPaid     TransactionStatus = "paid"
	StatusRefunded TransactionStatus = "refunded"
)

// DateRange là một khoảng thời gian tuyệt đối, bất biến sau khi dựng: Start ≤ End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Bucket là một phân đoạn liên tục của DateRange theo Granularity.
// Label là chuỗi ngày (yyyy-MM-dd) theo giờ địa phương của Start.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// Filters là tập giá trị lọc theo từng chiều; slice rỗng nghĩa là không lọc.
type Filters struct {
	Platform []string `json:"platform"`
	Country  []string `json:"country"`
	Device   []string `json:"device"`
	UserType []string `json:"userType"`
	Product  []string `json:"product"`
}

// GeneratorParams là request descriptor chung cho cả bốn generator.
// Truyền by value — engine không giữ state nào qua các lần gọi.
type GeneratorParams struct {
	Range   DateRange
	GroupBy Granularity
	Filters Filters
	Compare CompareMode
}

// Transaction là một giao dịch được sinh ra, bất biến sau khi sinh.
// Các trường tiền tệ là số nguyên (đã làm tròn), timestamp là chuỗi UTC RFC3339.
type Transaction struct {
	TransactionID string            `json:"transaction_id"`
	UserIDHash    string            `json:"user_id_hash"`
	ContentID     string            `json:"content_id,omitempty"`
	ProductType   ProductType       `json:"product_type"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Tax           int64             `json:"tax"`
	Discount      int64             `json:"discount"`
	Status        TransactionStatus `json:"status"`
	PaidAtUTC     string            `json:"paid_at_utc"`
	Source        string            `json:"source,omitempty"`
	Platform      string            `json:"platform,omitempty"`
	Device        string            `json:"device,omitempty"`
	Country       string            `json:"country,omitempty"`
}

// SummaryDeltas chứa delta so sánh của summary khi compare ≠ none.
type SummaryDeltas struct {
	VsPrev *float64 `json:"vsPrev,omitempty"`
	Yoy    *float64 `json:"yoy,omitempty"`
}

// RevenueSummary là các chỉ số tổng hợp của domain revenue.
// Các trường *_rate là tỉ lệ trong [0,1], không phải phần trăm.
type RevenueSummary struct {
	Gross         int64          `json:"gross"`
	Net           int64          `json:"net"`
	Orders        int            `json:"orders"`
	PayingUsers   int            `json:"paying_users"`
	Arppu         float64        `json:"arppu"`
	ChurnRate     float64        `json:"churn_rate"`
	RetentionRate float64        `json:"retention_rate"`
	PaymentRate   float64        `json:"payment_rate"`
	Deltas        *SummaryDeltas `json:"deltas,omitempty"`
}

// RevenueBreakdownItem là doanh thu theo loại sản phẩm và tỉ trọng trên gross.
type RevenueBreakdownItem struct {
	Label   ProductType `json:"label"`
	Revenue int64       `json:"revenue"`
	Share   float64     `json:"share"`
}

// TopPayerRow là một dòng trong bảng xếp hạng người trả tiền nhiều nhất.
type TopPayerRow struct {
	UserIDHash      string `json:"user_id_hash"`
	TotalRevenue    int64  `json:"total_revenue"`
	Orders          int    `json:"orders"`
	AvgOrderValue   int64  `json:"avg_order_value"`
	LastPurchaseUTC string `json:"last_purchase_utc"`
}

// FunnelStage là một bậc của funnel acquisition.
type FunnelStage struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Volume         int64   `json:"volume"`
	ConversionRate float64 `json:"conversion_rate"`
}

// SourcePerformance là hiệu suất theo nguồn traffic.
type SourcePerformance struct {
	Source         string  `json:"source"`
	Visits         int64   `json:"visits"`
	FreeViews      int64   `json:"free_views"`
	FirstPurchases int64   `json:"first_purchases"`
	ConversionRate float64 `json:"conversion_rate"`
	Arpu           float64 `json:"arpu"`
	Revenue        int64   `json:"revenue"`
}

// PlatformArpu là ARPU và doanh thu theo nền tảng.
type PlatformArpu struct {
	Platform string  `json:"platform"`
	Arpu     float64 `json:"arpu"`
	Revenue  int64   `json:"revenue"`
}

// TrafficMixPoint là cơ cấu traffic external/internal/direct của một bucket.
type TrafficMixPoint struct {
	Date     string `json:"date"`
	External int64  `json:"external"`
	Internal int64  `json:"internal"`
	Direct   int64  `json:"direct"`
}

// ContentPerformanceRow là một dòng trong bảng hiệu suất nội dung.
type ContentPerformanceRow struct {
	ContentID       string  `json:"content_id"`
	Title           string  `json:"title"`
	Views           int64   `json:"views"`
	UniqueViewers   int64   `json:"unique_viewers"`
	Sales           int64   `json:"sales"`
	Revenue         int64   `json:"revenue"`
	ConversionRate  float64 `json:"conversion_rate"`
	AvgWatchTimeSec int64   `json:"avg_watch_time_sec"`
	Likes           int64   `json:"likes"`
	Comments        int64   `json:"comments"`
	Reposts         int64   `json:"reposts"`
	Status          string  `json:"status"`
	Platform        string  `json:"platform"`
	CreatorSegment  string  `json:"creator_segment"`
}

// ContentTopItem là projection top-N của bảng hiệu suất nội dung.
type ContentTopItem struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
	Revenue   int64  `json:"revenue"`
	Views     int64  `json:"views"`
}

// WatchTimeTrendPoint là thời gian xem trung bình của một bucket.
type WatchTimeTrendPoint struct {
	Date            string `json:"date"`
	AvgWatchTimeSec int64  `json:"avg_watch_time_sec"`
}

// FollowersTrendPoint là số follower của một bucket trong trend.
type FollowersTrendPoint struct {
	Date             string `json:"date"`
	FollowersTotal   int64  `json:"followers_total"`
	FollowersNew     int64  `json:"followers_new"`
	FollowersChurned int64  `json:"followers_churned"`
}

// RetentionPoint là tỉ lệ giữ chân của một cohort (7d/30d/90d).
type RetentionPoint struct {
	CohortStart   string  `json:"cohort_start"`
	RetentionRate float64 `json:"retention_rate"`
	ChurnRate     float64 `json:"churn_rate"`
}

// RealtimeActive là số người dùng active tại thời điểm poll.
type RealtimeActive struct {
	ActiveUsers int64  `json:"active_users"`
	PolledAt    string `json:"polled_at"`
}

// RevenueTrendPoint là doanh thu đã gom bucket của trend revenue.
type RevenueTrendPoint struct {
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
}
