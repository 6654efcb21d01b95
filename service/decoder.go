package service

import (
	"bytes"
	"image"
	_ "image/gif"  // 注册 GIF 解码器
	_ "image/jpeg" // 注册 JPEG 解码器
	_ "image/png"  // 注册 PNG 解码器

	"github.com/TIANLI0/LumenKit/model"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // 注册 BMP 解码器
	_ "golang.org/x/image/tiff" // 注册 TIFF 解码器
	_ "golang.org/x/image/webp" // 注册 WebP 解码器
)

// ErrNotAnImage 字节流不是可识别的图片编码
var ErrNotAnImage = errors.New("data is not a decodable image")

// Decode 将原始字节解码为 RGB 像素网格。
// 图片格式通过内容嗅探自动识别，带 alpha 通道、灰度、索引色的
// 图片统一归一化为 8 位 RGB。
func Decode(data []byte) (*model.PixelGrid, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrNotAnImage, err.Error())
	}

	// Clone 将任意颜色模型统一转为 NRGBA
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	grid := &model.PixelGrid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 0, width*height*3),
	}

	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			// 丢弃 alpha，只保留 RGB
			grid.Pix = append(grid.Pix, row[x], row[x+1], row[x+2])
		}
	}

	return grid, nil
}
