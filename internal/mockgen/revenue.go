package mockgen

import (
	"fmt"
	"math"
	"sort"
)

func fmtTransactionID(bucketIdx, productIdx, orderIdx int) string {
	return fmt.Sprintf("tx-%d-%d-%d", bucketIdx, productIdx, orderIdx)
}

func fmt4UserID(n int) string {
	return fmt.Sprintf("u-%04d", n)
}

func fmtContentID(n int) string {
	return fmt.Sprintf("content-%d", n)
}

// Khoảng giá theo loại sản phẩm (JPY).
var productPricing = map[ProductType]struct{ Min, Max float64 }{
	ProductSingle:       {800, 7000},
	ProductSubscription: {1200, 5000},
	ProductTip:          {300, 2500},
}

// Phí nền tảng theo loại sản phẩm.
var productFees = map[ProductType]float64{
	ProductSingle:       0.12,
	ProductSubscription: 0.10,
	ProductTip:          0.08,
}

// Trọng số đơn hàng theo loại sản phẩm: single 45%, subscription 35%, tip 20%.
func productWeight(product ProductType) float64 {
	switch product {
	case ProductSubscription:
		return 0.35
	case ProductTip:
		return 0.2
	default:
		return 0.45
	}
}

// RevenueDataset là toàn bộ output của một lần sinh domain revenue.
// SubscribersAtStart/Cancellations/AudienceSize là số liệu trung gian phục vụ
// kiểm tra chéo, không nằm trong summary trả cho client.
type RevenueDataset struct {
	Transactions       []Transaction
	Summary            RevenueSummary
	Breakdown          []RevenueBreakdownItem
	TopPayers          []TopPayerRow
	SubscribersAtStart int
	Cancellations      int
	AudienceSize       int
}

// GenerateRevenueDataset sinh dataset revenue cho một request descriptor.
// Mọi randomness đều lấy từ PRNG của context theo thứ tự cố định — hai lần gọi
// với cùng input cho ra output giống nhau từng bit.
func GenerateRevenueDataset(params GeneratorParams) (*RevenueDataset, error) {
	return generateRevenueDataset(params, "revenue")
}

func generateRevenueDataset(params GeneratorParams, seedKey string) (*RevenueDataset, error) {
	ctx := NewMockContext(seedKey, params.Range, params.GroupBy, params.Filters, params.Compare)

	transactions, err := buildTransactions(ctx)
	if err != nil {
		return nil, err
	}

	dataset := &RevenueDataset{Transactions: transactions}
	buildRevenueAggregations(ctx, dataset)
	dataset.TopPayers = buildTopPayers(transactions)

	return dataset, nil
}

// buildTransactions sinh giao dịch theo từng bucket, từng loại sản phẩm.
// Thứ tự draw trong một giao dịch: giá, thuế, [giảm giá nếu single], trạng
// thái, user id, content id, thời điểm, rồi các thuộc tính categorical (chỉ
// draw khi chiều tương ứng không có filter). Không được đảo thứ tự này.
func buildTransactions(ctx *MockContext) ([]Transaction, error) {
	var result []Transaction

	for bucketIndex, bucket := range ctx.Buckets {
		bucketMultiplier := 1 + math.Sin(float64(bucketIndex)/1.5)*0.2
		baseOrders := RandomBetween(120, 220, ctx.Random) * bucketMultiplier

		for productIndex, productType := range ProductTypes {
			orderCount := int(math.Round(baseOrders * productWeight(productType) * RandomBetween(0.8, 1.2, ctx.Random)))
			if orderCount < 10 {
				orderCount = 10
			}

			pricing := productPricing[productType]
			for i := 0; i < orderCount; i++ {
				price := RandomBetween(pricing.Min, pricing.Max, ctx.Random)
				tax := price * RandomBetween(0.06, 0.1, ctx.Random)
				discount := 0.0
				if productType == ProductSingle {
					discount = price * RandomBetween(0.03, 0.08, ctx.Random)
				}
				status := StatusPaid
				if ctx.Random() > 0.96 {
					status = StatusRefunded
				}

				userID := fmt4UserID(RandomInt(1, 6000, ctx.Random))
				contentID := fmtContentID(RandomInt(1, 24, ctx.Random))
				paidAt := RandomTimeWithinBucket(bucket, ctx.Random)

				source, err := pickTransactionSource(ctx, productType)
				if err != nil {
					return nil, err
				}
				platform, err := pickTransactionAttr(ctx.Filters.Platform, func() string {
					return pickPlatformByAffinity(productType, ctx.Random)
				})
				if err != nil {
					return nil, err
				}
				device, err := pickTransactionAttr(ctx.Filters.Device, func() string {
					return pickDeviceByProduct(productType, ctx.Random)
				})
				if err != nil {
					return nil, err
				}
				country, err := pickTransactionAttr(ctx.Filters.Country, func() string {
					return pickCountryByProduct(productType, ctx.Random)
				})
				if err != nil {
					return nil, err
				}

				result = append(result, Transaction{
					TransactionID: fmtTransactionID(bucketIndex, productIndex, i),
					UserIDHash:    userID,
					ContentID:     contentID,
					ProductType:   productType,
					Amount:        int64(math.Round(price)),
					Currency:      "JPY",
					Tax:           int64(math.Round(tax)),
					Discount:      int64(math.Round(discount)),
					Status:        status,
					PaidAtUTC:     paidAt,
					Source:        source,
					Platform:      platform,
					Device:        device,
					Country:       country,
				})
			}
		}
	}

	sort.SliceStable(result, func(a, b int) bool {
		return result[a].PaidAtUTC < result[b].PaidAtUTC
	})
	return result, nil
}

// buildRevenueAggregations tính summary và breakdown từ tập giao dịch đã sinh.
func buildRevenueAggregations(ctx *MockContext, dataset *RevenueDataset) {
	transactions := dataset.Transactions

	gross := GrossRevenueFromTransactions(transactions)
	net := NetRevenueFromTransactions(transactions, averageFee(transactions))
	orders := OrdersFromTransactions(transactions)
	payingUsers := PayingUsersFromTransactions(transactions)

	// Nền subscriber ước lượng 1.4–1.8 lần số người trả tiền, sàn 400
	baselineSubscribers := int(math.Round(float64(payingUsers) * RandomBetween(1.4, 1.8, ctx.Random)))
	if baselineSubscribers < 400 {
		baselineSubscribers = 400
	}
	cancellations := int(math.Round(float64(baselineSubscribers) * RandomBetween(0.03, 0.08, ctx.Random)))

	churnRate := CalculateChurnRate(cancellations, baselineSubscribers)
	retentionRate := CalculateRetentionRate(churnRate)

	impliedPaymentRate := Clamp(RandomBetween(0.14, 0.26, ctx.Random), 0.1, 0.32)
	audienceSize := int(math.Round(float64(payingUsers) / impliedPaymentRate))
	if audienceSize < payingUsers {
		audienceSize = payingUsers
	}
	paymentRate := CalculatePaymentRate(payingUsers, audienceSize)

	breakdownTotals := BreakdownByProduct(transactions)
	breakdown := make([]RevenueBreakdownItem, 0, len(ProductTypes))
	for _, label := range ProductTypes {
		share := 0.0
		if breakdownTotals[label] != 0 {
			share = breakdownTotals[label] / gross
		}
		breakdown = append(breakdown, RevenueBreakdownItem{
			Label:   label,
			Revenue: int64(math.Round(breakdownTotals[label])),
			Share:   share,
		})
	}

	dataset.Summary = RevenueSummary{
		Gross:         int64(math.Round(gross)),
		Net:           int64(math.Round(net)),
		Orders:        orders,
		PayingUsers:   payingUsers,
		Arppu:         CalculateArppu(gross, payingUsers),
		ChurnRate:     churnRate,
		RetentionRate: retentionRate,
		PaymentRate:   paymentRate,
	}
	dataset.Breakdown = breakdown
	dataset.SubscribersAtStart = baselineSubscribers
	dataset.Cancellations = cancellations
	dataset.AudienceSize = audienceSize
}

// buildTopPayers gom giao dịch paid theo user, xếp theo tổng doanh thu giảm dần,
// hòa thì lấy người mua gần nhất trước, cắt top 10.
func buildTopPayers(transactions []Transaction) []TopPayerRow {
	type payerAggregate struct {
		revenue         float64
		orders          int
		lastPurchaseUTC string
	}

	aggregates := make(map[string]*payerAggregate)
	var order []string
	for _, tx := range transactions {
		if tx.Status != StatusPaid {
			continue
		}
		agg, ok := aggregates[tx.UserIDHash]
		if !ok {
			agg = &payerAggregate{lastPurchaseUTC: tx.PaidAtUTC}
			aggregates[tx.UserIDHash] = agg
			order = append(order, tx.UserIDHash)
		}
		agg.revenue += float64(tx.Amount)
		agg.orders++
		if tx.PaidAtUTC > agg.lastPurchaseUTC {
			agg.lastPurchaseUTC = tx.PaidAtUTC
		}
	}

	rows := make([]TopPayerRow, 0, len(order))
	for _, userID := range order {
		agg := aggregates[userID]
		rows = append(rows, TopPayerRow{
			UserIDHash:      userID,
			TotalRevenue:    int64(math.Round(agg.revenue)),
			Orders:          agg.orders,
			AvgOrderValue:   int64(math.Round(SafeDivide(agg.revenue, float64(agg.orders), 4))),
			LastPurchaseUTC: agg.lastPurchaseUTC,
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].TotalRevenue == rows[b].TotalRevenue {
			return rows[a].LastPurchaseUTC > rows[b].LastPurchaseUTC
		}
		return rows[a].TotalRevenue > rows[b].TotalRevenue
	})

	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows
}

// averageFee tính phí blend: trung bình phí của các loại sản phẩm có giao dịch,
// chia đều cho 3 loại; không có giao dịch nào thì dùng 0.12.
func averageFee(transactions []Transaction) float64 {
	counts := map[ProductType]int{}
	for _, tx := range transactions {
		counts[tx.ProductType]++
	}

	blended := 0.0
	for _, product := range ProductTypes {
		if counts[product] == 0 {
			continue
		}
		blended += productFees[product]
	}
	blended /= 3

	if blended == 0 {
		return 0.12
	}
	return blended
}

// pickTransactionSource: filter userType chiếm chỗ source khi có, không thì
// chọn theo thiên hướng sản phẩm (đúng một draw).
func pickTransactionSource(ctx *MockContext, product ProductType) (string, error) {
	if len(ctx.Filters.UserType) > 0 {
		return ctx.Filters.UserType[0], nil
	}
	return pickSourceByProduct(product, ctx.Random), nil
}

// pickTransactionAttr: filter có giá trị thì lấy phần tử đầu và KHÔNG tiêu thụ
// draw nào; ngược lại gọi picker (một draw).
func pickTransactionAttr(filter []string, pick func() string) (string, error) {
	if len(filter) > 0 {
		return filter[0], nil
	}
	return pick(), nil
}

func pickSourceByProduct(product ProductType, random func() float64) string {
	roll := random()
	switch product {
	case ProductSubscription:
		if roll < 0.5 {
			return "Direct"
		}
		return "Email"
	case ProductSingle:
		if roll < 0.5 {
			return "Search"
		}
		return "Social"
	default:
		if roll < 0.5 {
			return "Community"
		}
		return "Live"
	}
}

func pickPlatformByAffinity(product ProductType, random func() float64) string {
	roll := random()
	switch product {
	case ProductSubscription:
		if roll > 0.5 {
			return "YouTube"
		}
		return "Twitch"
	case ProductSingle:
		if roll > 0.5 {
			return "Instagram"
		}
		return "TikTok"
	default:
		if roll > 0.5 {
			return "X"
		}
		return "YouTube"
	}
}

func pickDeviceByProduct(product ProductType, random func() float64) string {
	roll := random()
	switch product {
	case ProductSubscription:
		if roll > 0.7 {
			return "desktop"
		}
		return "mobile"
	case ProductTip:
		if roll > 0.6 {
			return "mobile"
		}
		return "desktop"
	default:
		if roll > 0.5 {
			return "mobile"
		}
		return "tablet"
	}
}

func pickCountryByProduct(product ProductType, random func() float64) string {
	roll := random()
	switch product {
	case ProductSubscription:
		if roll > 0.6 {
			return "JP"
		}
		if roll > 0.3 {
			return "US"
		}
		return "KR"
	case ProductTip:
		if roll > 0.6 {
			return "US"
		}
		if roll > 0.3 {
			return "GB"
		}
		return "JP"
	default:
		if roll > 0.5 {
			return "JP"
		}
		return "TW"
	}
}
