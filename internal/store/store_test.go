package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/otpking/internal/database"
	"github.com/example/otpking/internal/models"
)

func setupTestStore(t *testing.T) (*Store, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return New(db), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		Credits:      100,
		ReferralCode: "ref-" + username,
		IPAddress:    "127.0.0.1",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFaqListing(t *testing.T) {
	st, db := setupTestStore(t)

	for _, item := range []models.FaqItem{
		{Question: "q3", Answer: "a3", DisplayOrder: 3, IsActive: true},
		{Question: "q1", Answer: "a1", DisplayOrder: 1, IsActive: true},
		{Question: "q2", Answer: "a2", DisplayOrder: 2, IsActive: true},
		{Question: "hidden", Answer: "a0", DisplayOrder: 0, IsActive: false},
	} {
		require.NoError(t, db.Create(&item).Error)
	}

	active, err := st.ListActiveFaqItems()
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{
		active[0].DisplayOrder, active[1].DisplayOrder, active[2].DisplayOrder,
	})

	all, err := st.ListAllFaqItems()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDeleteUserCascades(t *testing.T) {
	st, db := setupTestStore(t)
	user := seedUser(t, db, "alice")
	country := &models.Country{Name: "Testland", Code: "XX", Numbers: "+111", TotalNumbers: 1}
	require.NoError(t, db.Create(country).Error)

	require.NoError(t, db.Create(&models.NumberHistory{
		UserID: user.ID, CountryID: country.ID, PhoneNumber: "+111", UsedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.Notification{
		UserID: &user.ID, Title: "t", Message: "m",
	}).Error)
	require.NoError(t, db.Create(&models.WalletTransaction{
		UserID: user.ID, Type: models.TransactionAdmin, Amount: 10,
		Description: "d", Status: models.StatusCompleted,
	}).Error)
	require.NoError(t, db.Create(&models.SupportMessage{
		UserID: user.ID, SenderType: "user", Message: "help",
	}).Error)
	require.NoError(t, db.Create(&models.SavedNumber{
		UserID: user.ID, CountryID: country.ID, PhoneNumber: "+111", SavedAt: time.Now(),
	}).Error)

	require.NoError(t, st.DeleteUser(user.ID))

	for name, model := range map[string]interface{}{
		"number_history":      &models.NumberHistory{},
		"notifications":       &models.Notification{},
		"wallet_transactions": &models.WalletTransaction{},
		"support_messages":    &models.SupportMessage{},
		"saved_numbers":       &models.SavedNumber{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Zerof(t, count, "%s rows must cascade with the user", name)
	}
}

func TestAbsentLookupsReturnNil(t *testing.T) {
	st, _ := setupTestStore(t)

	user, err := st.GetUser(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)

	gift, err := st.GetGiftCode("NOPE")
	require.NoError(t, err)
	assert.Nil(t, gift)

	setting, err := st.GetSetting("missing")
	require.NoError(t, err)
	assert.Nil(t, setting)

	country, err := st.GetCountry(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, country)
}

func TestSettingUpsert(t *testing.T) {
	st, _ := setupTestStore(t)

	created, err := st.SetSetting("number_cost", "10")
	require.NoError(t, err)
	assert.Equal(t, "10", created.Value)

	updated, err := st.SetSetting("number_cost", "15")
	require.NoError(t, err)
	assert.Equal(t, "15", updated.Value)

	fetched, err := st.GetSetting("number_cost")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "15", fetched.Value)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestActiveWelcomeMessage(t *testing.T) {
	st, db := setupTestStore(t)

	older := models.WelcomeMessage{Title: "old", Message: "m", IsActive: true}
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, db.Create(&older).Error)

	inactive := models.WelcomeMessage{Title: "off", Message: "m", IsActive: false}
	inactive.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&inactive).Error)

	newest := models.WelcomeMessage{Title: "new", Message: "m", IsActive: true}
	require.NoError(t, db.Create(&newest).Error)

	message, err := st.GetActiveWelcomeMessage()
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, "new", message.Title)
}

func TestUserNotificationsIncludeBroadcasts(t *testing.T) {
	st, db := setupTestStore(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, db.Create(&models.Notification{
		UserID: &alice.ID, Title: "personal", Message: "m",
	}).Error)
	require.NoError(t, db.Create(&models.Notification{
		UserID: &bob.ID, Title: "someone else", Message: "m",
	}).Error)
	require.NoError(t, db.Create(&models.Notification{
		Title: "broadcast", Message: "m", IsBroadcast: true,
	}).Error)

	notifications, err := st.ListUserNotifications(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	titles := []string{notifications[0].Title, notifications[1].Title}
	assert.Contains(t, titles, "personal")
	assert.Contains(t, titles, "broadcast")
}

func TestSavedNumbers(t *testing.T) {
	st, db := setupTestStore(t)
	user := seedUser(t, db, "alice")
	country := &models.Country{Name: "Testland", Code: "XX"}
	require.NoError(t, db.Create(country).Error)

	saved := &models.SavedNumber{
		UserID: user.ID, CountryID: country.ID, PhoneNumber: "+111", SavedAt: time.Now(),
	}
	require.NoError(t, st.SaveNumber(saved))

	exists, err := st.IsSavedNumber(user.ID, "+111")
	require.NoError(t, err)
	assert.True(t, exists)

	listed, err := st.ListUserSavedNumbers(user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Country)
	assert.Equal(t, "Testland", listed[0].Country.Name)

	require.NoError(t, st.DeleteSavedNumber(saved.ID, user.ID))
	exists, err = st.IsSavedNumber(user.ID, "+111")
	require.NoError(t, err)
	assert.False(t, exists)
}
