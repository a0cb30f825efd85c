package api

import (
	"time"

	"github.com/akulinich/gaintrack/internal/db"
	"github.com/akulinich/gaintrack/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	authCookieName = "gaintrack_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	dailyLogService *services.DailyLogService
	workoutService  *services.WorkoutService
	analytics       *services.AnalyticsService
	settingsService *services.SettingsService
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
