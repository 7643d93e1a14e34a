package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every endpoint. Code 0 means success;
// 1xxx validation, 2xxx domain conflicts, 4xxx auth/not-found, 5xxx upstream
// or database failures.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
