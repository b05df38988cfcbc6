package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/pkg/response"
)

// HealthController serves GET /api/health. The endpoint always answers 200;
// database connectivity is reported in the body so a monitor can distinguish a
// dead process from a dead store.
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	database := "connected"

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		database = "disconnected"
	}

	response.Success(w, map[string]string{"status": "ok", "database": database})
}
