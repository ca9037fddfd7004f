package api_router

import (
	"fmt"

	"github.com/haierkeys/note-organizer-service/pkg/convert"

	"github.com/gin-gonic/gin"
)

func pathParamID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := convert.StrTo(raw).Int64()
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
