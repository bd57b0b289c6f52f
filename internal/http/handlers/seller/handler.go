package seller

import "github.com/packzo/ishop/internal/provider"

// Handler 卖家后台接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建卖家侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
