package service

import (
	"github.com/TIANLI0/LumenKit/model"
	"github.com/pkg/errors"
)

// ErrEmptyImage 图片不含任何像素，平均强度无定义
var ErrEmptyImage = errors.New("no pixels found in image")

// AverageIntensity 计算像素网格的平均强度。
// 每个像素的强度为 (R+G+B)/3 的整数商，先逐像素取整再累加，
// 最终以浮点除法求平均值。取整顺序不能改变，否则结果会有偏差。
func AverageIntensity(grid *model.PixelGrid) (float64, error) {
	if grid.Empty() {
		return 0, ErrEmptyImage
	}

	var totalIntensity uint64
	var pixelCount uint64

	pix := grid.Pix
	for i := 0; i+2 < len(pix); i += 3 {
		r := uint64(pix[i])
		g := uint64(pix[i+1])
		b := uint64(pix[i+2])

		totalIntensity += (r + g + b) / 3
		pixelCount++
	}

	if pixelCount == 0 {
		return 0, ErrEmptyImage
	}

	return float64(totalIntensity) / float64(pixelCount), nil
}

// IntensityService 驱动解码与强度计算
type IntensityService struct{}

func NewIntensityService() *IntensityService {
	return &IntensityService{}
}

// CalculateFromBytes 解码图片字节并计算平均强度。
// 解码失败返回 ErrNotAnImage，零像素图片返回 ErrEmptyImage，
// 调用方可用 errors.Is 区分。
func (s *IntensityService) CalculateFromBytes(data []byte) (float64, error) {
	grid, err := Decode(data)
	if err != nil {
		return 0, err
	}
	return AverageIntensity(grid)
}
