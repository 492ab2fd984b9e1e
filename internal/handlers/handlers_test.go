package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/otpking/internal/config"
	"github.com/example/otpking/internal/database"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/routes"
	"github.com/example/otpking/internal/utils"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenExpires:  time.Hour,
		SignupBonus:   100,
		ReferralBonus: 25,
	}

	app := fiber.New()
	routes.Register(app, db, cfg, zap.NewNop())
	return app, db, cfg
}

func jsonRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func tokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, cfg.TokenExpires)
	require.NoError(t, err)
	return token
}

func seedAccount(t *testing.T, db *gorm.DB, username string, admin bool) *models.User {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Credits:      100,
		ReferralCode: "ref-" + username,
		IsAdmin:      admin,
		IPAddress:    "127.0.0.1",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestHealth(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/health", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "Backend is running!", payload["message"])
}

func TestSignup(t *testing.T) {
	t.Run("creates account with signup bonus", func(t *testing.T) {
		app, _, _ := setupApp(t)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
			"username": "alice",
			"password": "secret123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		payload := decodeBody(t, resp)
		assert.NotEmpty(t, payload["token"])
		user := payload["user"].(map[string]interface{})
		assert.Equal(t, float64(100), user["credits"])
		assert.NotEmpty(t, user["referral_code"])
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		app, db, _ := setupApp(t)
		seedAccount(t, db, "alice", false)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
			"username": "alice",
			"password": "secret123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("pays the referrer through the ledger", func(t *testing.T) {
		app, db, _ := setupApp(t)
		referrer := seedAccount(t, db, "alice", false)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
			"username":     "bob",
			"password":     "secret123",
			"referralCode": referrer.ReferralCode,
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var updated models.User
		require.NoError(t, db.First(&updated, "id = ?", referrer.ID).Error)
		assert.Equal(t, 125, updated.Credits)
		assert.Equal(t, 1, updated.SuccessfulReferrals)

		var entries []models.WalletTransaction
		require.NoError(t, db.Where("user_id = ?", referrer.ID).Find(&entries).Error)
		require.Len(t, entries, 1)
		assert.Equal(t, models.TransactionReferral, entries[0].Type)
	})

	t.Run("rejects unknown referral code", func(t *testing.T) {
		app, _, _ := setupApp(t)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
			"username":     "bob",
			"password":     "secret123",
			"referralCode": "does-not-exist",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		app, db, _ := setupApp(t)
		seedAccount(t, db, "alice", false)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"username": "alice",
			"password": "secret123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		payload := decodeBody(t, resp)
		assert.NotEmpty(t, payload["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		app, db, _ := setupApp(t)
		seedAccount(t, db, "alice", false)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"username": "alice",
			"password": "wrong",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("banned account", func(t *testing.T) {
		app, db, _ := setupApp(t)
		user := seedAccount(t, db, "alice", false)
		require.NoError(t, db.Model(user).Update("is_banned", true).Error)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"username": "alice",
			"password": "secret123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestClaimGiftCodeEndpoint(t *testing.T) {
	t.Run("successful claim", func(t *testing.T) {
		app, db, cfg := setupApp(t)
		user := seedAccount(t, db, "alice", false)
		require.NoError(t, db.Create(&models.GiftCode{
			Code:          "WELCOME50",
			CreditsAmount: 50,
			MaxClaims:     5,
			ExpiryDate:    time.Now().Add(time.Hour),
			IsActive:      true,
		}).Error)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/gift-codes/claim", fiber.Map{
			"code": "WELCOME50",
		}, tokenFor(t, cfg, user)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		payload := decodeBody(t, resp)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, float64(50), payload["creditsAdded"])
	})

	t.Run("failed claim collapses to success false", func(t *testing.T) {
		app, db, cfg := setupApp(t)
		user := seedAccount(t, db, "alice", false)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/gift-codes/claim", fiber.Map{
			"code": "NOPE",
		}, tokenFor(t, cfg, user)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		payload := decodeBody(t, resp)
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, float64(0), payload["creditsAdded"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		app, _, _ := setupApp(t)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/gift-codes/claim", fiber.Map{
			"code": "WELCOME50",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminGating(t *testing.T) {
	app, db, cfg := setupApp(t)
	user := seedAccount(t, db, "alice", false)
	admin := seedAccount(t, db, "boss", true)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/admin/users", nil, tokenFor(t, cfg, user)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/admin/users", nil, tokenFor(t, cfg, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicFaqs(t *testing.T) {
	app, db, _ := setupApp(t)
	for _, item := range []models.FaqItem{
		{Question: "q2", Answer: "a", DisplayOrder: 2, IsActive: true},
		{Question: "q1", Answer: "a", DisplayOrder: 1, IsActive: true},
		{Question: "hidden", Answer: "a", DisplayOrder: 0, IsActive: false},
	} {
		require.NoError(t, db.Create(&item).Error)
	}

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/faqs", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "q1", data[0].(map[string]interface{})["question"])
	assert.Equal(t, "q2", data[1].(map[string]interface{})["question"])
}

func TestClaimNumberEndpoint(t *testing.T) {
	app, db, cfg := setupApp(t)
	user := seedAccount(t, db, "alice", false)
	country := &models.Country{Name: "Testland", Code: "XX", Numbers: "+111\n+222", TotalNumbers: 2}
	require.NoError(t, db.Create(country).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/numbers/claim", fiber.Map{
		"countryId": country.ID.String(),
	}, tokenFor(t, cfg, user)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "+111", data["phone_number"])

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, 90, updated.Credits, "default number cost is charged")
}
