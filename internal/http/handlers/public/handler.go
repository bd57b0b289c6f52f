package public

import "github.com/packzo/ishop/internal/provider"

// Handler 买家与公开接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建买家侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
