package model

// PixelGrid 归一化后的 RGB 像素网格，按行优先顺序存储
type PixelGrid struct {
	Width  int
	Height int
	// Pix 以 R, G, B 三字节为一组连续存放，长度为 Width*Height*3
	Pix []uint8
}

// PixelCount 返回网格中的像素总数
func (g *PixelGrid) PixelCount() int {
	return g.Width * g.Height
}

// Empty 判断网格是否为空（任一维度为零即为空）
func (g *PixelGrid) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// IntensityResponse 强度计算成功响应
type IntensityResponse struct {
	AverageIntensity float64 `json:"average_intensity"`
	Message          string  `json:"message"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
