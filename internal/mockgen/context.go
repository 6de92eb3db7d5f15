package mockgen

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Các pool giá trị categorical dùng chung cho mọi generator. Đây là hằng số của
// contract dữ liệu — đổi nội dung hoặc thứ tự sẽ đổi toàn bộ dataset sinh ra.
var (
	Platforms       = []string{"YouTube", "Twitch", "Instagram", "TikTok", "X"}
	Countries       = []string{"JP", "US", "KR", "TW", "TH", "ID", "VN", "GB"}
	Devices         = []string{"mobile", "desktop", "tablet", "tv"}
	UserTypes       = []string{"new", "returning", "subscriber"}
	Sources         = []string{"Search", "Social", "Direct", "Referral", "Affiliate", "Email", "Paid Ads"}
	ContentStatuses = []string{"draft", "scheduled", "published"}
	ContentGenres   = []string{"Gaming", "Education", "Lifestyle", "Music", "Sports", "Tech", "Comedy"}
)

// externalSources là tập nguồn được tính là external khi đo external share.
var externalSources = map[string]bool{
	"Search":   true,
	"Social":   true,
	"Referral": true,
	"Paid Ads": true,
	"Affiliate": true,
}

// MockContext là context sinh dữ liệu của đúng một lần gọi generator: seed,
// stream PRNG, range, granularity, filter và danh sách bucket. Bất biến trong
// suốt vòng đời của nó (trừ state nội bộ của stream random) và không được chia
// sẻ giữa các request.
type MockContext struct {
	Seed    string
	Random  func() float64
	Range   DateRange
	GroupBy Granularity
	Compare CompareMode
	Filters Filters
	Buckets []Bucket
}

// NewMockContext dựng context sinh dữ liệu cho một domain. Seed là hàm thuần
// của (domain, range, granularity, compare, filters) — hai request giống nhau
// theo giá trị cho ra dataset giống nhau từng byte, và hai domain khác nhau
// không bao giờ vô tình dùng chung seed.
//
// Bucket của context luôn dựng theo DefaultTimezone, độc lập với tz mà boundary
// dùng để resolve preset — giữ nguyên hành vi gốc.
func NewMockContext(domain string, r DateRange, groupBy Granularity, filters Filters, compare CompareMode) *MockContext {
	seed := SeedFor(domain, r, groupBy, filters, compare)

	return &MockContext{
		Seed:    seed,
		Random:  NewSeededRandom(seed),
		Range:   r,
		GroupBy: groupBy,
		Compare: compare,
		Filters: filters,
		Buckets: BuildBuckets(r, groupBy, ResolveTimezone(DefaultTimezone)),
	}
}

// SeedFor render seed descriptor của một request. Boundary dùng hàm này để
// audit log đúng seed mà generator sẽ dùng, không cần dựng lại context.
func SeedFor(domain string, r DateRange, groupBy Granularity, filters Filters, compare CompareMode) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s-%s",
		domain,
		FormatUTC(r.Start),
		FormatUTC(r.End),
		groupBy,
		compare,
		HashFilters(filters),
	)
}

// HashFilters render tập filter thành chuỗi canonical cho seed: từng chiều theo
// thứ tự cố định, giá trị trong chiều sort tăng dần, mỗi entry là "key:value"
// nối bằng "|". Tập filter rỗng hoàn toàn render thành sentinel "none".
func HashFilters(filters Filters) string {
	dimensions := []struct {
		key    string
		values []string
	}{
		{"platform", filters.Platform},
		{"country", filters.Country},
		{"device", filters.Device},
		{"userType", filters.UserType},
		{"product", filters.Product},
	}

	var entries []string
	for _, dim := range dimensions {
		if len(dim.values) == 0 {
			continue
		}
		sorted := append([]string(nil), dim.values...)
		sort.Strings(sorted)
		for _, value := range sorted {
			entries = append(entries, dim.key+":"+value)
		}
	}

	if len(entries) == 0 {
		return "none"
	}
	return strings.Join(entries, "|")
}

// AllocateByWeights chia total theo trọng số với jitter ±15%, rồi scale lại để
// tổng bằng đúng total. Kết quả không âm.
func AllocateByWeights(total float64, weights []float64, random func() float64) []float64 {
	weightSum := 0.0
	for _, w := range weights {
		weightSum += w
	}
	if weightSum == 0 {
		weightSum = 1
	}

	allocations := make([]float64, len(weights))
	allocationSum := 0.0
	for i, w := range weights {
		allocations[i] = (total * w / weightSum) * RandomBetween(0.85, 1.15, random)
		allocationSum += allocations[i]
	}

	scale := total / allocationSum
	for i := range allocations {
		allocations[i] = math.Max(0, allocations[i]*scale)
	}
	return allocations
}

// Bucketize chia total vào bucketCount phần theo trọng số mùa vụ 0.5+sin(i).
func Bucketize(total float64, bucketCount int, random func() float64) []float64 {
	weights := make([]float64, bucketCount)
	for i := range weights {
		weights[i] = 0.5 + math.Sin(float64(i))
	}
	return AllocateByWeights(total, weights, random)
}

// Distribute chia total theo trọng số (floor 0.2) với jitter ±15% cho từng phần,
// sau đó dồn phần dư còn lại chia đều cho mọi phần để tổng khớp với total.
// Đây là primitive "remainder redistribution" dùng cho allocation của funnel —
// tách riêng để tái sử dụng, không trộn vào số học inline.
func Distribute(total float64, weights []float64, random func() float64) []float64 {
	weightSum := 0.0
	for _, w := range weights {
		weightSum += math.Max(w, 0.2)
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = math.Max(w, 0.2) / weightSum
	}

	remainder := total
	allocation := make([]float64, len(weights))
	for i, ratio := range normalized {
		amount := total * ratio * RandomBetween(0.85, 1.15, random)
		remainder -= amount
		allocation[i] = amount
	}

	if remainder != 0 {
		adjustment := remainder / float64(len(allocation))
		for i := range allocation {
			allocation[i] = math.Max(0, allocation[i]+adjustment)
		}
	}

	return allocation
}

// GenerateID sinh id dạng "prefix-index-XXXX" với hậu tố 4 chữ số từ stream random.
func GenerateID(prefix string, index int, random func() float64) string {
	randomPart := int(math.Floor(random() * 10000))
	return fmt.Sprintf("%s-%d-%04d", prefix, index, randomPart)
}

// PickPlatform chọn platform: ưu tiên pool filter nếu có, không thì pool mặc định.
func PickPlatform(random func() float64, filters Filters) (string, error) {
	pool := Platforms
	if len(filters.Platform) > 0 {
		pool = filters.Platform
	}
	return PickOne(pool, random)
}

// PickCountry chọn country theo filter hoặc pool mặc định.
func PickCountry(random func() float64, filters Filters) (string, error) {
	pool := Countries
	if len(filters.Country) > 0 {
		pool = filters.Country
	}
	return PickOne(pool, random)
}

// PickDevice chọn device theo filter hoặc pool mặc định.
func PickDevice(random func() float64, filters Filters) (string, error) {
	pool := Devices
	if len(filters.Device) > 0 {
		pool = filters.Device
	}
	return PickOne(pool, random)
}

// PickUserType chọn user type theo filter hoặc pool mặc định.
func PickUserType(random func() float64, filters Filters) (string, error) {
	pool := UserTypes
	if len(filters.UserType) > 0 {
		pool = filters.UserType
	}
	return PickOne(pool, random)
}

// RandomTimeWithinBucket chọn một thời điểm trong [start, end] của bucket,
// trả về chuỗi UTC chuẩn của engine. Tiêu thụ đúng một draw.
func RandomTimeWithinBucket(bucket Bucket, random func() float64) string {
	start := bucket.Start.Unix()
	end := bucket.End.Unix()
	at := start + int64(float64(end-start)*random())
	return FormatUTC(time.Unix(at, 0))
}

// IsExternalSource cho biết source có thuộc tập external cố định hay không.
func IsExternalSource(source string) bool {
	return externalSources[source]
}
