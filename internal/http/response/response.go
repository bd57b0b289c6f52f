package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody 错误与提示响应统一使用 message 字段
type MessageBody struct {
	Message string `json:"message"`
}

// OK 200 返回业务数据
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created 201 返回业务数据
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// Message 返回提示文案
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

// Error 返回错误文案并终止后续处理
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, MessageBody{Message: message})
}
