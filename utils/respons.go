package utils

import (
	"github.com/gin-gonic/gin"
)

// Kontrak API: payload sukses selalu dibungkus {"data": ...},
// kegagalan selalu {"error": "pesan"}.

type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, DataResponse{Data: data})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// RespondAppError memakai taksonomi error untuk menentukan status code.
func RespondAppError(c *gin.Context, err error) {
	RespondError(c, HTTPStatus(err), err)
}
