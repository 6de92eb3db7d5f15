// Package mockgen là engine sinh dữ liệu analytics giả lập (deterministic).
// Toàn bộ dữ liệu dashboard (revenue, acquisition, content, audience) được sinh
// từ một seed chuỗi — cùng input thì cùng output, không có entropy bên ngoài.
package mockgen

import (
	"math"

	"creator_insight/internal/common"
)

// NewSeededRandom tạo một stream số giả ngẫu nhiên trong [0, 1) từ seed chuỗi.
// Khởi tạo bằng hash trộn bit trên từng byte của seed (nhân hằng số lẻ, xor-shift,
// rotate), mỗi lần gọi chạy thêm một bước mix 32-bit. Cùng seed thì cho ra đúng
// một chuỗi số — thứ tự draw của caller vì vậy là một phần của contract.
func NewSeededRandom(seed string) func() float64 {
	h := uint32(1779033703) ^ uint32(len(seed))
	for i := 0; i < len(seed); i++ {
		h = (h ^ uint32(seed[i])) * 3432918353
		h = (h << 13) | (h >> 19)
	}

	return func() float64 {
		h = (h ^ (h >> 16)) * 2246822507
		h = (h ^ (h >> 13)) * 3266489909
		h ^= h >> 16
		return float64(h) / 4294967296.0
	}
}

// RandomBetween trả về một số thực trong [min, max) từ stream random.
func RandomBetween(min, max float64, random func() float64) float64 {
	return min + (max-min)*random()
}

// RandomInt trả về một số nguyên trong [min, max] (làm tròn từ draw uniform).
func RandomInt(min, max int, random func() float64) int {
	return int(math.Round(RandomBetween(float64(min), float64(max), random)))
}

// PickOne chọn một phần tử từ danh sách. Danh sách rỗng là lỗi lập trình
// (ErrEmptyPool) — mọi pool hợp lệ trong engine đều là hằng số không rỗng.
func PickOne[T any](values []T, random func() float64) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, common.ErrEmptyPool
	}
	index := int(math.Floor(random() * float64(len(values))))
	if index >= len(values) {
		index = len(values) - 1
	}
	return values[index], nil
}
