package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/bitfantasy/fixera/internal/shop/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupWarrantyTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewWarrantyService(repos.Product, repos.Customer)
	h := NewWarrantyHandler(svc)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api/v1")
	warranty := api.Group("/warranty")
	{
		warranty.GET("/search/serials", h.SearchSerials)
		warranty.GET("/search/phones", h.SearchPhones)
		warranty.GET("/:serial", h.Resolve)
	}

	return r, db
}

func seedWarrantyFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	customer := testutil.SeedCustomer(t, db, "00000000-0000-4000-8000-000000000002", "Kasun Perera", "0712345678")
	product := testutil.SeedProduct(t, db, "00000000-0000-4000-8000-000000000003", "ThinkPad T14", 12)
	testutil.SeedSoldProduct(t, db, "00000000-0000-4000-8000-000000000004", "SN-1001", product.ID, customer.ID,
		time.Now().AddDate(0, -2, 0))
	testutil.SeedSoldProduct(t, db, "00000000-0000-4000-8000-000000000005", "SN-2002", product.ID, "",
		time.Now().AddDate(0, -24, 0))
}

func TestResolveSerialUnderWarranty(t *testing.T) {
	r, db := setupWarrantyTest(t)
	seedWarrantyFixtures(t, db)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/SN-1001", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	warranty := data["warranty"].(map[string]interface{})
	if warranty["is_under_warranty"] != true {
		t.Errorf("two months into a 12-month warranty should be covered: %v", warranty)
	}
	if days, ok := warranty["warranty_remaining_days"].(float64); !ok || days <= 0 {
		t.Errorf("remaining days should be positive: %v", warranty["warranty_remaining_days"])
	}

	customer := data["customer"].(map[string]interface{})
	if customer["phone"] != "0712345678" {
		t.Errorf("resolution should carry the owning customer: %v", customer)
	}
}

func TestResolveSerialExpiredNoCustomer(t *testing.T) {
	r, db := setupWarrantyTest(t)
	seedWarrantyFixtures(t, db)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/SN-2002", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	warranty := data["warranty"].(map[string]interface{})
	if warranty["is_under_warranty"] != false {
		t.Errorf("unit sold two years ago should be out of warranty: %v", warranty)
	}
	if warranty["warranty_remaining_days"].(float64) != 0 {
		t.Errorf("expired warranty must report 0 days: %v", warranty)
	}
	if _, hasCustomer := data["customer"]; hasCustomer {
		t.Errorf("sale without a linked buyer should omit customer: %v", data)
	}
}

func TestResolveSerialNotFound(t *testing.T) {
	r, db := setupWarrantyTest(t)
	seedWarrantyFixtures(t, db)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/SN-MISSING", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown serial should 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSearchSerialsFragment(t *testing.T) {
	r, db := setupWarrantyTest(t)
	seedWarrantyFixtures(t, db)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/search/serials?q=SN-1&seq=7", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected one match for SN-1, got %v", items)
	}
	// The client's sequence number comes back so stale responses can be dropped.
	if data["seq"].(float64) != 7 {
		t.Errorf("seq should be echoed, got %v", data["seq"])
	}
}

func TestSearchSerialsTooShort(t *testing.T) {
	r, db := setupWarrantyTest(t)
	seedWarrantyFixtures(t, db)
	token := testutil.DefaultTestToken()

	// Single character never reaches the database and yields an empty list.
	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/search/serials?q=S", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	items := testutil.ParseResponse(w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 0 {
		t.Errorf("sub-minimum fragment should return empty list, got %v", items)
	}
}

func TestSearchPhonesFragment(t *testing.T) {
	r, db := setupWarrantyTest(t)
	seedWarrantyFixtures(t, db)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/search/phones?q=0712", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	items := testutil.ParseResponse(w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected one customer match, got %v", items)
	}

	// Two characters is below the phone search threshold.
	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/warranty/search/phones?q=07", nil, token)
	items = testutil.ParseResponse(w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 0 {
		t.Errorf("two-character phone fragment should return empty list, got %v", items)
	}
}
