package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/models"
)

func multipartMenuBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "dish.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestAddMenu(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, "owner@example.com", models.RoleOperator)
	resturant := createTestResturant(t, owner.ID, "Nonna's", "London", []string{"Italian"})

	body, contentType := multipartMenuBody(t, map[string]string{
		"name":        "Margherita",
		"description": "Tomato, mozzarella, basil",
		"price":       "950",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(authCookie(t, owner))

	resp := doRequest(t, env.router, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.images.uploads != 1 {
		t.Errorf("image uploads = %d, want 1", env.images.uploads)
	}

	var loaded models.Resturant
	if err := initializers.DB.Preload("Menus").First(&loaded, resturant.ID).Error; err != nil {
		t.Fatalf("reload restaurant: %v", err)
	}
	if len(loaded.Menus) != 1 {
		t.Fatalf("restaurant has %d menus, want 1", len(loaded.Menus))
	}
	menu := loaded.Menus[0]
	if menu.Name != "Margherita" || menu.Price != 950 {
		t.Errorf("menu = %q/%d, want Margherita/950", menu.Name, menu.Price)
	}
	if menu.Image == "" {
		t.Error("menu image url was not stored")
	}
}

func TestAddMenuRequiresRestaurant(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, "owner@example.com", models.RoleOperator)

	body, contentType := multipartMenuBody(t, map[string]string{
		"name":        "Margherita",
		"description": "Tomato, mozzarella, basil",
		"price":       "950",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(authCookie(t, owner))

	resp := doRequest(t, env.router, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAddMenuRejectsNonOperator(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, "jane@example.com", models.RoleUser)

	body, contentType := multipartMenuBody(t, map[string]string{
		"name":        "Margherita",
		"description": "Tomato, mozzarella, basil",
		"price":       "950",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(authCookie(t, user))

	resp := doRequest(t, env.router, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAddMenuValidatesFields(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		withImage bool
	}{
		{
			name:      "missing name",
			fields:    map[string]string{"description": "d", "price": "950"},
			withImage: true,
		},
		{
			name:      "bad price",
			fields:    map[string]string{"name": "Margherita", "description": "d", "price": "free"},
			withImage: true,
		},
		{
			name:      "zero price",
			fields:    map[string]string{"name": "Margherita", "description": "d", "price": "0"},
			withImage: true,
		},
		{
			name:      "missing image",
			fields:    map[string]string{"name": "Margherita", "description": "d", "price": "950"},
			withImage: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			owner := createTestUser(t, "owner@example.com", models.RoleOperator)
			createTestResturant(t, owner.ID, "Nonna's", "London", []string{"Italian"})

			body, contentType := multipartMenuBody(t, tc.fields, tc.withImage)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", body)
			req.Header.Set("Content-Type", contentType)
			req.AddCookie(authCookie(t, owner))

			resp := doRequest(t, env.router, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestEditMenu(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, "owner@example.com", models.RoleOperator)
	resturant := createTestResturant(t, owner.ID, "Nonna's", "London", []string{"Italian"})
	menu := createTestMenu(t, &resturant, "Margherita", 950)

	// Only the price changes; other fields keep their values.
	body, contentType := multipartMenuBody(t, map[string]string{"price": "1100"}, false)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/menu/%d", menu.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(authCookie(t, owner))

	resp := doRequest(t, env.router, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var updated models.Menu
	if err := initializers.DB.First(&updated, menu.ID).Error; err != nil {
		t.Fatalf("reload menu: %v", err)
	}
	if updated.Price != 1100 {
		t.Errorf("price = %d, want 1100", updated.Price)
	}
	if updated.Name != "Margherita" || updated.Image != menu.Image {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestEditMenuUnknownID(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, "owner@example.com", models.RoleOperator)
	createTestResturant(t, owner.ID, "Nonna's", "London", []string{"Italian"})

	body, contentType := multipartMenuBody(t, map[string]string{"price": "1100"}, false)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/menu/9999", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(authCookie(t, owner))

	resp := doRequest(t, env.router, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
