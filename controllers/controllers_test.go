package controllers_test

import (
	"context"
	"fmt"
	. "github.com/jkimani/platepal-api/controllers"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/models"
	"github.com/jkimani/platepal-api/routes"
	"github.com/jkimani/platepal-api/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("FRONTEND_URL", "http://localhost:5173")
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Resturant{}, &models.Menu{}, &models.Order{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	initializers.DB = db
}

// fakePaymentGateway records calls and serves a canned session.
type fakePaymentGateway struct {
	calls      int
	lastParams services.SessionParams
	session    *services.Session
	err        error
}

func (f *fakePaymentGateway) CreateCheckoutSession(_ context.Context, params services.SessionParams) (*services.Session, error) {
	f.calls++
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeImageStore struct {
	uploads int
}

func (f *fakeImageStore) UploadFile(_ context.Context, file *multipart.FileHeader) (string, error) {
	f.uploads++
	return "https://images.test/" + file.Filename, nil
}

func (f *fakeImageStore) UploadDataURI(_ context.Context, _ string) (string, error) {
	f.uploads++
	return "https://images.test/profile.png", nil
}

type fakeMailer struct {
	verificationCodes []string
	welcomes          int
	resetURLs         []string
	resetSuccesses    int
}

func (f *fakeMailer) SendVerificationEmail(_, code string) error {
	f.verificationCodes = append(f.verificationCodes, code)
	return nil
}

func (f *fakeMailer) SendWelcomeEmail(_, _ string) error {
	f.welcomes++
	return nil
}

func (f *fakeMailer) SendPasswordResetEmail(_, resetURL string) error {
	f.resetURLs = append(f.resetURLs, resetURL)
	return nil
}

func (f *fakeMailer) SendResetSuccessEmail(_ string) error {
	f.resetSuccesses++
	return nil
}

type testEnv struct {
	router   *gin.Engine
	payments *fakePaymentGateway
	images   *fakeImageStore
	mailer   *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	setupTestDB(t)

	env := &testEnv{
		payments: &fakePaymentGateway{session: &services.Session{ID: "cs_test_1", RedirectURL: "https://pay.test/cs_test_1"}},
		images:   &fakeImageStore{},
		mailer:   &fakeMailer{},
	}

	env.router = gin.New()
	routes.DefaultRoutes(env.router)
	routes.AuthRoutes(env.router, NewAuthController(env.mailer, env.images))
	routes.ResturantRoutes(env.router, NewResturantController(env.images))
	routes.MenuRoutes(env.router, NewMenuController(env.images))
	routes.OrderRoutes(env.router, NewOrderController(env.payments))

	return env
}

func createTestUser(t *testing.T, email, role string) models.User {
	t.Helper()

	hashed, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Fullname: "Test User",
		Email:    email,
		Password: hashed,
		Contact:  "0712345678",
		Role:     role,
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		t.Fatalf("create test user: %v", result.Error)
	}
	return user
}

func authCookie(t *testing.T, user models.User) *http.Cookie {
	t.Helper()

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate JWT: %v", err)
	}
	return &http.Cookie{Name: "token", Value: token}
}

func createTestResturant(t *testing.T, userID uint, name, city string, cuisines []string) models.Resturant {
	t.Helper()

	raw := "["
	for i, c := range cuisines {
		if i > 0 {
			raw += ","
		}
		raw += fmt.Sprintf("%q", c)
	}
	raw += "]"

	resturant := models.Resturant{
		UserID:        userID,
		ResturantName: name,
		City:          city,
		DeliveryTime:  30,
		Cuisines:      datatypes.JSON(raw),
		ImageURL:      "https://images.test/resturant.png",
	}
	if result := initializers.DB.Create(&resturant); result.Error != nil {
		t.Fatalf("create test restaurant: %v", result.Error)
	}
	return resturant
}

func createTestMenu(t *testing.T, resturant *models.Resturant, name string, price int) models.Menu {
	t.Helper()

	menu := models.Menu{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Image:       "https://images.test/" + name + ".png",
	}
	if result := initializers.DB.Create(&menu); result.Error != nil {
		t.Fatalf("create test menu: %v", result.Error)
	}
	if err := initializers.DB.Model(resturant).Association("Menus").Append(&menu); err != nil {
		t.Fatalf("link test menu: %v", err)
	}
	return menu
}

func doRequest(t *testing.T, router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func countOrders(t *testing.T) int64 {
	t.Helper()

	var count int64
	if result := initializers.DB.Model(&models.Order{}).Count(&count); result.Error != nil {
		t.Fatalf("count orders: %v", result.Error)
	}
	return count
}
