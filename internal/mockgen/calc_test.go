package mockgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0, 4), "chia cho 0 phải trả 0")
	assert.Equal(t, 0.5, SafeDivide(1, 2, 4))
	assert.Equal(t, 0.3333, SafeDivide(1, 3, 4))
	assert.Equal(t, 0.33, SafeDivide(1, 3, 2))
}

func TestDelta(t *testing.T) {
	assert.Equal(t, 0.0, Delta(0, 0))
	assert.Equal(t, 1.0, Delta(5, 0), "baseline 0 với giá trị dương quy ước +100%")
	assert.Equal(t, 0.1, Delta(110, 100))
	assert.Equal(t, -0.25, Delta(75, 100))
	assert.Equal(t, -1.0, Delta(0, 100))
}

func TestCalculateArppu(t *testing.T) {
	assert.Equal(t, 250.0, CalculateArppu(1000, 4))
	assert.Equal(t, 0.0, CalculateArppu(1000, 0))
	assert.Equal(t, 333.33, CalculateArppu(1000, 3))
}

func TestRates(t *testing.T) {
	assert.Equal(t, 0.05, CalculateChurnRate(50, 1000))
	assert.Equal(t, 0.95, CalculateRetentionRate(0.05))
	assert.Equal(t, 0.1, CalculateConversionRate(10, 100))
	assert.Equal(t, 0.2, CalculatePaymentRate(200, 1000))
	assert.Equal(t, 0.0, CalculatePaymentRate(200, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, Clamp(0.05, 0.1, 0.32))
	assert.Equal(t, 0.32, Clamp(0.5, 0.1, 0.32))
	assert.Equal(t, 0.2, Clamp(0.2, 0.1, 0.32))
}

func TestCalculateFunnelStages(t *testing.T) {
	stages := CalculateFunnelStages(FunnelTotals{Visits: 10000, FreeViews: 7000, FirstPurchases: 700})

	assert.Len(t, stages, 3)
	assert.Equal(t, "visit", stages[0].ID)
	assert.Equal(t, int64(10000), stages[0].Volume)
	assert.Equal(t, 1.0, stages[0].ConversionRate)
	assert.Equal(t, "free_view", stages[1].ID)
	assert.Equal(t, 0.7, stages[1].ConversionRate)
	assert.Equal(t, "first_purchase", stages[2].ID)
	assert.Equal(t, 0.1, stages[2].ConversionRate, "conversion của stage sau tính trên stage liền trước")

	// volume không tăng dần theo chiều funnel
	assert.GreaterOrEqual(t, stages[0].Volume, stages[1].Volume)
	assert.GreaterOrEqual(t, stages[1].Volume, stages[2].Volume)
}

func TestRevenueAggregatesFromTransactions(t *testing.T) {
	txs := []Transaction{
		{UserIDHash: "u-0001", Amount: 1000, Status: StatusPaid},
		{UserIDHash: "u-0001", Amount: 500, Status: StatusPaid},
		{UserIDHash: "u-0002", Amount: 2000, Status: StatusRefunded},
		{UserIDHash: "u-0003", Amount: 300, Status: StatusPaid},
	}

	assert.Equal(t, 1800.0, GrossRevenueFromTransactions(txs))
	assert.Equal(t, 3, OrdersFromTransactions(txs))
	assert.Equal(t, 2, PayingUsersFromTransactions(txs))

	// refund trừ nguyên amount, không trừ phí
	net := NetRevenueFromTransactions(txs, 0.1)
	assert.InDelta(t, 1800*0.9-2000, net, 1e-9)
}

func TestBreakdownByProduct(t *testing.T) {
	txs := []Transaction{
		{ProductType: ProductSingle, Amount: 1000, Status: StatusPaid},
		{ProductType: ProductSingle, Amount: 500, Status: StatusPaid},
		{ProductType: ProductTip, Amount: 300, Status: StatusPaid},
		{ProductType: ProductSubscription, Amount: 900, Status: StatusRefunded},
	}

	totals := BreakdownByProduct(txs)
	assert.Equal(t, 1500.0, totals[ProductSingle])
	assert.Equal(t, 300.0, totals[ProductTip])
	assert.Equal(t, 0.0, totals[ProductSubscription], "giao dịch refund không tính vào breakdown")
}
