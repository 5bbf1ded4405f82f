package server

import (
	"github.com/gin-gonic/gin"
)

type SearchHandler interface {
	Search(ctx *gin.Context)
}
