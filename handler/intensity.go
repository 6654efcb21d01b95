package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/TIANLI0/LumenKit/config"
	"github.com/TIANLI0/LumenKit/model"
	"github.com/TIANLI0/LumenKit/service"
	"github.com/TIANLI0/LumenKit/utils"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type IntensityHandler struct {
	cfg              *config.Config
	redisService     *service.RedisService
	intensityService *service.IntensityService
}

// NewIntensityHandler 创建强度计算 Handler。redis 为 nil 时缓存禁用。
func NewIntensityHandler(cfg *config.Config, redis *service.RedisService, intensity *service.IntensityService) *IntensityHandler {
	return &IntensityHandler{
		cfg:              cfg,
		redisService:     redis,
		intensityService: intensity,
	}
}

// Calculate 处理图片上传并返回平均强度
func (h *IntensityHandler) Calculate(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		// multipart 解析失败或缺少 image 字段
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Message: "请上传图片文件",
			Error:   err.Error(),
		})
		return
	}

	// 验证文件大小
	if file.Size > h.cfg.Upload.MaxSize {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Message: fmt.Sprintf("文件大小超过限制 (%d MB)", h.cfg.Upload.MaxSize/(1024*1024)),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Message: "读取上传内容失败",
			Error:   err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Success: false,
			Message: "读取上传内容失败",
			Error:   err.Error(),
		})
		return
	}

	md5 := utils.BytesMD5(data)

	// 检查缓存
	ctx := context.Background()
	if h.redisService != nil {
		cached, hit, err := h.redisService.GetIntensity(ctx, md5)
		if err != nil {
			utils.Logger.Warn("failed to get cache", zap.Error(err))
		}
		if hit {
			utils.Logger.Info("cache hit", zap.String("md5", md5))
			c.JSON(http.StatusOK, model.IntensityResponse{
				AverageIntensity: cached,
				Message:          fmt.Sprintf("Average intensity calculated: %.2f", cached),
			})
			return
		}
	}

	intensity, err := h.intensityService.CalculateFromBytes(data)
	if err != nil {
		if errors.Is(err, service.ErrNotAnImage) || errors.Is(err, service.ErrEmptyImage) {
			c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{
				Success: false,
				Message: "无法解析的图片内容",
				Error:   err.Error(),
			})
			return
		}
		utils.Logger.Error("failed to calculate intensity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Success: false,
			Message: "强度计算失败",
			Error:   err.Error(),
		})
		return
	}

	utils.Logger.Info("intensity calculated",
		zap.String("md5", md5),
		zap.Int64("size", file.Size),
		zap.Float64("intensity", intensity))

	// 保存到缓存
	if h.redisService != nil {
		if err := h.redisService.SetIntensity(ctx, md5, intensity); err != nil {
			utils.Logger.Warn("failed to set cache", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, model.IntensityResponse{
		AverageIntensity: intensity,
		Message:          fmt.Sprintf("Average intensity calculated: %.2f", intensity),
	})
}
