package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Health reports whether the data directory is reachable and writable —
// the only dependency this service has.
func Health(dataPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		storageStatus := "ok"
		probe := dataPath + "/.health"
		if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
			storageStatus = "error"
		} else {
			_ = os.Remove(probe)
		}

		status := http.StatusOK
		if storageStatus != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storageStatus,
		})
	}
}
