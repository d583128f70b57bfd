package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/seeds"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB(t *testing.T) {
	t.Helper()
	logger.Init("test")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	database.DB = db
	if err := database.DB.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Enrollment{},
		&models.XPTransaction{},
		&models.Badge{},
		&models.StudentBadge{},
		&models.StudentActivity{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestGetBadges_ReturnsActiveCatalog(t *testing.T) {
	SetupTestDB(t)
	_, err := seeds.SeedBadges()
	assert.NoError(t, err)

	c, w := testContext(t, "GET", "/api/badges", nil)
	GetBadges(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Badges []models.Badge `json:"badges"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Badges, 12)
	assert.Equal(t, "FIRST_LESSON", resp.Badges[0].Code)
}

func TestGetMyXP_ReturnsTotalAndRank(t *testing.T) {
	SetupTestDB(t)

	student := models.Student{ID: "stu1", Name: "Tester", Email: "tester@futureup.example", XPTotal: 0, IsActive: true}
	assert.NoError(t, database.DB.Create(&student).Error)
	assert.NoError(t, database.DB.Create(&models.XPTransaction{
		StudentID: "stu1", Amount: 50, Reason: models.ReasonLessonCompleted,
	}).Error)
	assert.NoError(t, database.DB.Model(&models.Student{}).Where("id = ?", "stu1").
		UpdateColumn("xp_total", 50).Error)

	c, w := testContext(t, "GET", "/api/me/xp", nil)
	c.Set("studentId", "stu1")
	GetMyXP(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		XPTotal            int64                  `json:"xpTotal"`
		RecentTransactions []models.XPTransaction `json:"recentTransactions"`
		Rank               int                    `json:"rank"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(50), resp.XPTotal)
	assert.Len(t, resp.RecentTransactions, 1)
	assert.Equal(t, 1, resp.Rank)
}

func TestGetMyXP_Unauthenticated(t *testing.T) {
	SetupTestDB(t)

	c, w := testContext(t, "GET", "/api/me/xp", nil)
	GetMyXP(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMySummary_NextBadgesFollowCatalogOrder(t *testing.T) {
	SetupTestDB(t)
	_, err := seeds.SeedBadges()
	assert.NoError(t, err)

	student := models.Student{ID: "stu2", Name: "Summary", Email: "summary@futureup.example", IsActive: true}
	assert.NoError(t, database.DB.Create(&student).Error)

	c, w := testContext(t, "GET", "/api/me/summary", nil)
	c.Set("studentId", "stu2")
	GetMySummary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalBadges  int            `json:"totalBadges"`
		EarnedBadges int            `json:"earnedBadges"`
		NextBadges   []models.Badge `json:"nextBadges"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.TotalBadges)
	assert.Equal(t, 0, resp.EarnedBadges)
	assert.Len(t, resp.NextBadges, 5)
	assert.Equal(t, "FIRST_LESSON", resp.NextBadges[0].Code)
}

func TestAdminGrantXP_AwardsThroughTheEngine(t *testing.T) {
	SetupTestDB(t)
	_, err := seeds.SeedBadges()
	assert.NoError(t, err)

	student := models.Student{ID: "stu3", Name: "Grantee", Email: "grantee@futureup.example", IsActive: true}
	assert.NoError(t, database.DB.Create(&student).Error)

	c, w := testContext(t, "POST", "/api/admin/xp/grant", map[string]interface{}{
		"studentId": "stu3",
		"reason":    "lesson_completed",
		"amount":    50,
	})
	AdminGrantXP(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		NewBadges []models.Badge `json:"newBadges"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.NewBadges, 1)
	assert.Equal(t, "FIRST_LESSON", resp.NewBadges[0].Code)
}

func TestAdminGrantXP_UnknownStudent(t *testing.T) {
	SetupTestDB(t)

	c, w := testContext(t, "POST", "/api/admin/xp/grant", map[string]interface{}{
		"studentId": "ghost",
		"reason":    "lesson_completed",
		"amount":    50,
	})
	AdminGrantXP(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCreateBadge_ConflictSurfacesToAdmin(t *testing.T) {
	SetupTestDB(t)

	body := map[string]interface{}{
		"code":           "CUSTOM",
		"name":           "Custom Badge",
		"conditionType":  "lessons_completed",
		"conditionValue": 3,
	}

	c, w := testContext(t, "POST", "/api/admin/badges", body)
	AdminCreateBadge(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext(t, "POST", "/api/admin/badges", body)
	AdminCreateBadge(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetCourseLeaderboard_UnknownCourse(t *testing.T) {
	SetupTestDB(t)

	c, w := testContext(t, "GET", "/api/leaderboard/courses/ghost", nil)
	c.Params = gin.Params{{Key: "courseId", Value: "ghost"}}
	GetCourseLeaderboard(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
