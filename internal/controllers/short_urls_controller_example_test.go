package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
	"github.com/fsdevblog/shortlinks/internal/controllers/mocksctrl"
	"github.com/fsdevblog/shortlinks/internal/logs"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services"
)

type mockTestHelper struct{}

func (h *mockTestHelper) Errorf(_ string, _ ...interface{}) {}
func (h *mockTestHelper) Fatalf(_ string, _ ...interface{}) {}

// ExampleShortURLController_CreateShortURL создание короткой ссылки через json API.
func ExampleShortURLController_CreateShortURL() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(new(mockTestHelper))
	defer ctrl.Finish()
	mockCreator := mocksctrl.NewMockURLCreator(ctrl)

	router := SetupRouter(RouterParams{
		URLService: mockCreator,
		BaseURL:    "http://test.com",
		Session:    middlewares.SessionConfig{Secret: []byte("secret")},
		Logger: logs.MustNew(func(o *logs.LoggerOptions) {
			o.Level = logs.LevelTypeError
		}),
	})

	testingURL := "https://example.com"
	mockCreator.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&models.URL{OriginalURL: testingURL, ShortCode: "aB3dE9"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/shorten",
		bytes.NewBufferString(fmt.Sprintf(`{"url":"%s"}`, testingURL)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	fmt.Printf("Status: %d\n", w.Code)
	fmt.Printf("Response: %s\n", w.Body.String())

	// Output:
	// Status: 201
	// Response: {"result":"http://test.com/s/aB3dE9","shortCode":"aB3dE9"}
}

// ExampleShortURLController_Redirect переход по короткой ссылке.
func ExampleShortURLController_Redirect() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(new(mockTestHelper))
	defer ctrl.Finish()
	mockRedirector := mocksctrl.NewMockRedirector(ctrl)

	router := SetupRouter(RouterParams{
		RedirectService: mockRedirector,
		Session:         middlewares.SessionConfig{Secret: []byte("secret")},
	})

	mockRedirector.EXPECT().
		Resolve(gomock.Any(), "aB3dE9", gomock.Any()).
		Return(&services.RedirectResult{Target: "https://example.com", URLID: 1}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/s/aB3dE9", nil))

	fmt.Printf("Status: %d\n", w.Code)
	fmt.Printf("Location: %s\n", w.Header().Get("Location"))

	// Output:
	// Status: 307
	// Location: https://example.com
}
