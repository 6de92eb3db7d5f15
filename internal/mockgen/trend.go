package mockgen

// ProductAll là giá trị filter đặc biệt: không lọc theo loại sản phẩm.
const ProductAll ProductType = "all"

// BuildRevenueTrend gom doanh thu giao dịch paid vào bucket theo range/groupBy.
// Bucket được dựng lại từ range nên hàm dùng được cho cả dữ liệu đã shift.
func BuildRevenueTrend(transactions []Transaction, rng DateRange, groupBy Granularity, productFilter ProductType) []RevenueTrendPoint {
	buckets := BuildBuckets(rng, groupBy, ResolveTimezone(DefaultTimezone))

	points := make([]RevenueTrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		start := FormatUTC(bucket.Start)
		end := FormatUTC(bucket.End)

		var bucketRevenue int64
		for _, tx := range transactions {
			if tx.Status != StatusPaid {
				continue
			}
			if productFilter != ProductAll && tx.ProductType != productFilter {
				continue
			}
			if tx.PaidAtUTC < start || tx.PaidAtUTC > end {
				continue
			}
			bucketRevenue += tx.Amount
		}

		points = append(points, RevenueTrendPoint{
			Label:   bucket.Label,
			Revenue: bucketRevenue,
		})
	}
	return points
}

// SumTransactions cộng amount của giao dịch paid, lọc theo loại sản phẩm nếu có.
func SumTransactions(transactions []Transaction, productFilter ProductType) int64 {
	var sum int64
	for _, tx := range transactions {
		if tx.Status != StatusPaid {
			continue
		}
		if productFilter != ProductAll && tx.ProductType != productFilter {
			continue
		}
		sum += tx.Amount
	}
	return sum
}
