package mockgen

import "math"

// Các hàm tính chỉ số thuần — không side effect, không I/O. Quy tắc làm tròn
// thống nhất: tiền tệ 2 chữ số, tỉ lệ 4 chữ số, làm tròn half-away-from-zero.

// RoundTo làm tròn value về precision chữ số thập phân.
func RoundTo(value float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(value*p) / p
}

// SafeDivide chia an toàn: mẫu bằng 0 trả về 0, không bao giờ NaN/Infinity,
// kết quả làm tròn về precision chữ số thập phân.
func SafeDivide(numerator, denominator float64, precision int) float64 {
	if denominator == 0 {
		return 0
	}
	return RoundTo(numerator/denominator, precision)
}

// CalculateArppu tính doanh thu trung bình trên mỗi người dùng trả tiền (2 chữ số).
func CalculateArppu(revenue float64, payingUsers int) float64 {
	return SafeDivide(revenue, float64(payingUsers), 2)
}

// CalculateChurnRate tính tỉ lệ rời bỏ trên số subscriber đầu kỳ.
func CalculateChurnRate(cancellations, subscribersAtStart int) float64 {
	return SafeDivide(float64(cancellations), float64(subscribersAtStart), 4)
}

// CalculateRetentionRate tính tỉ lệ giữ chân từ churn: round(1 - churn, 4).
func CalculateRetentionRate(churnRate float64) float64 {
	return RoundTo(1-churnRate, 4)
}

// CalculateConversionRate tính tỉ lệ chuyển đổi giữa hai đại lượng.
func CalculateConversionRate(numerator, denominator float64) float64 {
	return SafeDivide(numerator, denominator, 4)
}

// CalculatePaymentRate tính tỉ lệ trả tiền trên quy mô audience.
func CalculatePaymentRate(payingUsers, audienceSize int) float64 {
	return SafeDivide(float64(payingUsers), float64(audienceSize), 4)
}

// Delta tính tỉ lệ thay đổi giữa kỳ hiện tại và kỳ trước. Xử lý mốc 0 là có chủ
// đích và phải giữ nguyên: cả hai bằng 0 → 0; kỳ trước 0 mà hiện tại khác 0 → 1
// (tức +100%); còn lại (current-previous)/previous làm tròn 4 chữ số.
func Delta(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 1
	}
	return RoundTo((current-previous)/previous, 4)
}

// Clamp giới hạn value trong [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// FunnelTotals là tổng khối lượng ba bậc funnel của một khoảng thời gian.
type FunnelTotals struct {
	Visits         int64
	FreeViews      int64
	FirstPurchases int64
}

// CalculateFunnelStages dựng ba bậc funnel với conversion rate bậc-trên-bậc-trước.
func CalculateFunnelStages(totals FunnelTotals) []FunnelStage {
	return []FunnelStage{
		{
			ID:             "visit",
			Label:          "Visits",
			Volume:         totals.Visits,
			ConversionRate: 1,
		},
		{
			ID:             "free_view",
			Label:          "Free Views",
			Volume:         totals.FreeViews,
			ConversionRate: CalculateConversionRate(float64(totals.FreeViews), float64(totals.Visits)),
		},
		{
			ID:             "first_purchase",
			Label:          "First Purchases",
			Volume:         totals.FirstPurchases,
			ConversionRate: CalculateConversionRate(float64(totals.FirstPurchases), float64(totals.FreeViews)),
		},
	}
}

// GrossRevenueFromTransactions cộng dồn amount của các giao dịch paid.
func GrossRevenueFromTransactions(transactions []Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.Status == StatusPaid {
			total += float64(tx.Amount)
		}
	}
	return total
}

// NetRevenueFromTransactions tính doanh thu ròng: giao dịch paid trừ phí nền tảng
// (feeRate trên amount), thuế và giảm giá; giao dịch refunded trừ thẳng amount.
// Cách trừ refund phẳng (bỏ qua thuế/giảm giá của refund) không đối xứng với
// nhánh paid — giữ nguyên hành vi, không "sửa".
func NetRevenueFromTransactions(transactions []Transaction, feeRate float64) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.Status == StatusRefunded {
			total -= float64(tx.Amount)
			continue
		}
		fees := float64(tx.Amount)*feeRate + float64(tx.Tax)
		total += float64(tx.Amount) - fees - float64(tx.Discount)
	}
	return total
}

// OrdersFromTransactions đếm số giao dịch paid.
func OrdersFromTransactions(transactions []Transaction) int {
	count := 0
	for _, tx := range transactions {
		if tx.Status == StatusPaid {
			count++
		}
	}
	return count
}

// PayingUsersFromTransactions đếm số user id phân biệt trong các giao dịch paid.
func PayingUsersFromTransactions(transactions []Transaction) int {
	seen := make(map[string]struct{})
	for _, tx := range transactions {
		if tx.Status == StatusPaid {
			seen[tx.UserIDHash] = struct{}{}
		}
	}
	return len(seen)
}

// BreakdownByProduct cộng dồn amount của giao dịch paid theo loại sản phẩm.
func BreakdownByProduct(transactions []Transaction) map[ProductType]float64 {
	totals := map[ProductType]float64{
		ProductSingle:       0,
		ProductSubscription: 0,
		ProductTip:          0,
	}
	for _, tx := range transactions {
		if tx.Status == StatusPaid {
			totals[tx.ProductType] += float64(tx.Amount)
		}
	}
	return totals
}
