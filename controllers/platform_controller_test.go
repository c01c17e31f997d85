package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"backend/database"
	"backend/models"
)

func TestCreatePlatformReturnsSubmittedFields(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "root", "rootpass1", "admin")
	token := login(t, app, "root", "rootpass1")

	resp := doRequest(t, app, http.MethodPost, "/api/platforms",
		map[string]string{
			"name": "Shop A",
			"url":  "https://a.test",
			"logo": "https://a.test/logo.png",
		}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	if data["name"] != "Shop A" || data["url"] != "https://a.test" || data["logo"] != "https://a.test/logo.png" {
		t.Errorf("response must echo the submitted fields, got %v", data)
	}
	if data["platform_id"] == nil || data["platform_id"].(float64) <= 0 {
		t.Errorf("expected a generated platform_id, got %v", data["platform_id"])
	}
}

func TestCreatePlatformValidation(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "root", "rootpass1", "admin")
	token := login(t, app, "root", "rootpass1")

	resp := doRequest(t, app, http.MethodPost, "/api/platforms",
		map[string]string{"name": "X", "url": "khong-phai-url", "logo": ""}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	fields := body["error"].([]interface{})
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %v", fields)
	}

	var count int64
	database.DB.Model(&models.Platform{}).Count(&count)
	if count != 0 {
		t.Error("invalid payload must not create a row")
	}
}

func TestGetPlatformNotFound(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "root", "rootpass1", "admin")
	token := login(t, app, "root", "rootpass1")

	resp := doRequest(t, app, http.MethodGet, "/api/platforms/99999", nil, token)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body["success"])
	}
}

func TestUpdatePlatformPartial(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "root", "rootpass1", "admin")
	platform := seedPlatform(t, "Shop B", "https://b.test")
	token := login(t, app, "root", "rootpass1")

	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/platforms/%d", platform.PlatformID),
		map[string]string{"name": "Shop B Renamed"}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	if data["name"] != "Shop B Renamed" {
		t.Errorf("expected renamed platform, got %v", data["name"])
	}
	if data["url"] != "https://b.test" {
		t.Errorf("url must be untouched, got %v", data["url"])
	}
}

func TestDeletePlatform(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "root", "rootpass1", "admin")
	platform := seedPlatform(t, "Shop C", "https://c.test")
	token := login(t, app, "root", "rootpass1")

	resp := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/platforms/%d", platform.PlatformID), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var count int64
	database.DB.Model(&models.Platform{}).Where("platform_id = ?", platform.PlatformID).Count(&count)
	if count != 0 {
		t.Error("platform row must be gone after delete")
	}
}
